// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"math"

	"github.com/cockroachdb/errors"
)

// node is shared by both dimensions. Links are indexed by Dim.
type node[K, V any] struct {
	key    K
	value  V
	left   [numDims]NodeID
	right  [numDims]NodeID
	parent [numDims]NodeID
	black  [numDims]bool
	free   bool
}

// nodePool is an arena of nodes addressed by NodeID. Slot 0 is reserved so
// that the zero NodeID can stand in for nil.
type nodePool[K, V any] struct {
	nodes    []node[K, V]
	freeList []NodeID
}

func makeNodePool[K, V any](capacity int) nodePool[K, V] {
	np := nodePool[K, V]{
		nodes: make([]node[K, V], 1, capacity+1),
	}
	np.nodes[Nil].free = true
	return np
}

// get returns the node for id. The returned pointer is invalidated by the
// next call to alloc.
func (np *nodePool[K, V]) get(id NodeID) *node[K, V] {
	return &np.nodes[id]
}

func (np *nodePool[K, V]) alloc(k K, v V) NodeID {
	var id NodeID
	if n := len(np.freeList); n > 0 {
		id = np.freeList[n-1]
		np.freeList = np.freeList[:n-1]
	} else {
		if uint64(len(np.nodes)) > math.MaxUint32 {
			panic(errors.AssertionFailedf("bidimap: node arena exhausted"))
		}
		id = NodeID(len(np.nodes))
		np.nodes = append(np.nodes, node[K, V]{})
	}
	np.nodes[id] = node[K, V]{key: k, value: v}
	return id
}

func (np *nodePool[K, V]) free(id NodeID) {
	if id == Nil || int(id) >= len(np.nodes) || np.nodes[id].free {
		panic(errors.AssertionFailedf("bidimap: double free of node %d", id))
	}
	// Zero the slot so that the arena does not retain the payload.
	np.nodes[id] = node[K, V]{free: true}
	np.freeList = append(np.freeList, id)
}

// reset drops every node but retains the allocated capacity.
func (np *nodePool[K, V]) reset() {
	clear(np.nodes)
	np.nodes = np.nodes[:1]
	np.nodes[Nil].free = true
	np.freeList = np.freeList[:0]
}

// live returns the number of allocated nodes.
func (np *nodePool[K, V]) live() int {
	return len(np.nodes) - 1 - len(np.freeList)
}
