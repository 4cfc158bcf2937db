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

// First returns the least node in dimension d, or Nil if the tree is empty.
func (t *Tree[K, V]) First(d Dim) NodeID { return t.least(t.root[d], d) }

// Last returns the greatest node in dimension d, or Nil if the tree is empty.
func (t *Tree[K, V]) Last(d Dim) NodeID { return t.greatest(t.root[d], d) }

// Next returns the in-order successor of id in dimension d, or Nil.
func (t *Tree[K, V]) Next(id NodeID, d Dim) NodeID { return t.nextGreater(id, d) }

// Prev returns the in-order predecessor of id in dimension d, or Nil.
func (t *Tree[K, V]) Prev(id NodeID, d Dim) NodeID { return t.nextSmaller(id, d) }

func (t *Tree[K, V]) least(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	for l := t.left(id, d); l != Nil; l = t.left(id, d) {
		id = l
	}
	return id
}

func (t *Tree[K, V]) greatest(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	for r := t.right(id, d); r != Nil; r = t.right(id, d) {
		id = r
	}
	return id
}

func (t *Tree[K, V]) nextGreater(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	if r := t.right(id, d); r != Nil {
		return t.least(r, d)
	}
	// Climb until we arrive from a left subtree; that ancestor is next.
	child, parent := id, t.parent(id, d)
	for parent != Nil && child == t.right(parent, d) {
		child, parent = parent, t.parent(parent, d)
	}
	return parent
}

func (t *Tree[K, V]) nextSmaller(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	if l := t.left(id, d); l != Nil {
		return t.greatest(l, d)
	}
	child, parent := id, t.parent(id, d)
	for parent != Nil && child == t.left(parent, d) {
		child, parent = parent, t.parent(parent, d)
	}
	return parent
}
