// Copyright 2018 The Cockroach Authors.
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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
)

// Tree is a pair of red-black trees threaded through a single set of nodes.
// The KeyDim tree orders the nodes by key and the ValueDim tree orders the
// same nodes by value, so each mapping is stored once.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Tree[K, V any] struct {
	cfg   Config[K, V]
	log   logr.Logger
	np    nodePool[K, V]
	root  [numDims]NodeID
	count int

	// mods is bumped on every structural change. Cursors snapshot it to
	// detect changes they did not make.
	mods uint64
}

// MakeTree constructs a Tree. It panics if the config lacks a comparator.
func MakeTree[K, V any](cfg Config[K, V]) *Tree[K, V] {
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return &Tree[K, V]{
		cfg: cfg,
		log: cfg.logger(),
		np:  makeNodePool[K, V](cfg.InitialCapacity),
	}
}

// Len returns the number of mappings in the tree.
func (t *Tree[K, V]) Len() int { return t.count }

// Modifications returns the structural modification counter.
func (t *Tree[K, V]) Modifications() uint64 { return t.mods }

// Key returns the key stored at id.
func (t *Tree[K, V]) Key(id NodeID) K { return t.np.get(id).key }

// Value returns the value stored at id.
func (t *Tree[K, V]) Value(id NodeID) V { return t.np.get(id).value }

// LookupKey returns the node holding k, or Nil.
func (t *Tree[K, V]) LookupKey(k K) NodeID {
	return t.lookup(KeyDim, func(id NodeID) int {
		return t.cfg.CompareKeys(k, t.np.get(id).key)
	})
}

// LookupValue returns the node holding v, or Nil.
func (t *Tree[K, V]) LookupValue(v V) NodeID {
	return t.lookup(ValueDim, func(id NodeID) int {
		return t.cfg.CompareValues(v, t.np.get(id).value)
	})
}

// lookup descends dimension d. cmp compares the target against the node.
func (t *Tree[K, V]) lookup(d Dim, cmp func(NodeID) int) NodeID {
	id := t.root[d]
	for id != Nil {
		c := cmp(id)
		switch {
		case c == 0:
			return id
		case c < 0:
			id = t.np.get(id).left[d]
		default:
			id = t.np.get(id).right[d]
		}
	}
	return Nil
}

// Put maps k to v. Any mapping from k and any mapping to v is removed first,
// so after Put both k and v appear in exactly one mapping. The displaced
// mappings are described by the returned Eviction.
func (t *Tree[K, V]) Put(k K, v V) (ev Eviction[K, V]) {
	byKey, byValue := t.LookupKey(k), t.LookupValue(v)
	if byKey != Nil {
		ev.Value, ev.HadKey = t.np.get(byKey).value, true
	}
	if byValue != Nil {
		ev.Key, ev.HadValue = t.np.get(byValue).key, true
	}
	if byKey != Nil {
		t.Delete(byKey)
	}
	if byValue != Nil && byValue != byKey {
		if log := t.log.V(1); log.Enabled() {
			log.Info("evicted mapping", "dimension", ValueDim, "key", ev.Key, "value", v)
		}
		t.Delete(byValue)
	}

	id := t.np.alloc(k, v)
	if t.root[KeyDim] == Nil {
		t.root[KeyDim], t.root[ValueDim] = id, id
		t.setBlack(id, KeyDim)
		t.setBlack(id, ValueDim)
	} else {
		t.insert(id, KeyDim, func(o NodeID) int {
			return t.cfg.CompareKeys(k, t.np.get(o).key)
		})
		t.insert(id, ValueDim, func(o NodeID) int {
			return t.cfg.CompareValues(v, t.np.get(o).value)
		})
	}
	t.count++
	t.mods++
	return ev
}

// insert links id as a red leaf of dimension d and rebalances.
func (t *Tree[K, V]) insert(id NodeID, d Dim, cmp func(NodeID) int) {
	cur := t.root[d]
	for {
		c := cmp(cur)
		if c == 0 {
			// Put evicted any equal node, so the comparator is not a
			// total order.
			panic(errors.AssertionFailedf(
				"bidimap: duplicate %s after eviction; comparator is inconsistent", d))
		}
		n := t.np.get(cur)
		if c < 0 {
			if n.left[d] == Nil {
				n.left[d] = id
				break
			}
			cur = n.left[d]
		} else {
			if n.right[d] == Nil {
				n.right[d] = id
				break
			}
			cur = n.right[d]
		}
	}
	t.np.get(id).parent[d] = cur
	t.insertFixup(id, d)
}

// RemoveKey removes the mapping from k.
func (t *Tree[K, V]) RemoveKey(k K) (v V, ok bool) {
	id := t.LookupKey(k)
	if id == Nil {
		return v, false
	}
	v = t.np.get(id).value
	t.Delete(id)
	return v, true
}

// RemoveValue removes the mapping to v.
func (t *Tree[K, V]) RemoveValue(v V) (k K, ok bool) {
	id := t.LookupValue(v)
	if id == Nil {
		return k, false
	}
	k = t.np.get(id).key
	t.Delete(id)
	return k, true
}

// Delete unlinks id from both dimensions and releases it. id must be live.
func (t *Tree[K, V]) Delete(id NodeID) {
	for d := KeyDim; d < numDims; d++ {
		t.unlink(id, d)
	}
	t.np.free(id)
	t.count--
	t.mods++
}

// unlink removes id from the tree of dimension d only.
func (t *Tree[K, V]) unlink(id NodeID, d Dim) {
	if t.left(id, d) != Nil && t.right(id, d) != Nil {
		t.swapPosition(t.nextGreater(id, d), id, d)
	}

	replacement := t.left(id, d)
	if replacement == Nil {
		replacement = t.right(id, d)
	}
	parent := t.parent(id, d)

	if replacement != Nil {
		t.setParent(replacement, parent, d)
		t.replaceChild(parent, id, replacement, d)
		n := t.np.get(id)
		n.left[d], n.right[d], n.parent[d] = Nil, Nil, Nil
		if t.isBlack(id, d) {
			t.deleteFixup(replacement, d)
		}
		return
	}

	if parent == Nil {
		t.root[d] = Nil
		return
	}

	// A childless node is its own phantom replacement during the fixup and
	// is detached afterwards.
	if t.isBlack(id, d) {
		t.deleteFixup(id, d)
	}
	if parent = t.parent(id, d); parent != Nil {
		p := t.np.get(parent)
		if p.left[d] == id {
			p.left[d] = Nil
		} else {
			p.right[d] = Nil
		}
		t.np.get(id).parent[d] = Nil
	}
}

// Clear removes all mappings. The arena keeps its capacity.
func (t *Tree[K, V]) Clear() {
	if log := t.log.V(1); log.Enabled() {
		log.Info("cleared", "count", t.count)
	}
	t.np.reset()
	t.root = [numDims]NodeID{}
	t.count = 0
	t.mods++
}

// Height returns the height of the tree in dimension d.
func (t *Tree[K, V]) Height(d Dim) int {
	return t.height(t.root[d], d)
}

func (t *Tree[K, V]) height(id NodeID, d Dim) int {
	if id == Nil {
		return 0
	}
	return 1 + max(t.height(t.left(id, d), d), t.height(t.right(id, d), d))
}

// String returns a string description of the tree in dimension d. The format
// is similar to the https://en.wikipedia.org/wiki/Newick_format, with red
// nodes marked by a trailing '*'.
func (t *Tree[K, V]) String(d Dim) string {
	if t.count == 0 {
		return ";"
	}
	var b strings.Builder
	t.writeString(&b, t.root[d], d)
	return b.String()
}

func (t *Tree[K, V]) writeString(b *strings.Builder, id NodeID, d Dim) {
	l, r := t.left(id, d), t.right(id, d)
	if l != Nil || r != Nil {
		b.WriteByte('(')
		if l != Nil {
			t.writeString(b, l, d)
		}
		b.WriteByte(',')
		if r != Nil {
			t.writeString(b, r, d)
		}
		b.WriteByte(')')
	}
	n := t.np.get(id)
	if d == KeyDim {
		fmt.Fprint(b, n.key)
	} else {
		fmt.Fprint(b, n.value)
	}
	if !n.black[d] {
		b.WriteByte('*')
	}
}
