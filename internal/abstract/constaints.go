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

// Dim selects one of the two orderings maintained over the node set.
type Dim uint8

const (

	// KeyDim orders nodes by key.
	KeyDim Dim = iota

	// ValueDim orders nodes by value.
	ValueDim

	numDims = 2
)

// Opposite returns the other dimension.
func (d Dim) Opposite() Dim { return KeyDim + ValueDim - d }

func (d Dim) String() string {
	switch d {
	case KeyDim:
		return "key"
	case ValueDim:
		return "value"
	default:
		return "unknown"
	}
}

// NodeID is the index of a node in the arena. The zero NodeID never refers
// to a live node.
type NodeID uint32

// Nil is the NodeID standing in for an absent child, parent or root.
const Nil NodeID = 0

// Eviction describes the mappings displaced by a Put.
type Eviction[K, V any] struct {

	// Value is the value formerly mapped from the inserted key. It is
	// populated when HadKey is true.
	Value  V
	HadKey bool

	// Key is the key formerly mapped to the inserted value. It is populated
	// when HadValue is true. If the inserted pair was already present, both
	// fields describe the same mapping.
	Key      K
	HadValue bool
}
