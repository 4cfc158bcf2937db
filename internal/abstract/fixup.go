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

// insertFixup restores the red-black properties of dimension d after id has
// been linked in as a leaf.
func (t *Tree[K, V]) insertFixup(id NodeID, d Dim) {
	cur := id
	t.setRed(cur, d)
	for cur != Nil && cur != t.root[d] && t.isRed(t.parent(cur, d), d) {
		if t.isLeftChild(t.parent(cur, d), d) {
			uncle := t.right(t.grandParent(cur, d), d)
			if t.isRed(uncle, d) {
				t.setBlack(t.parent(cur, d), d)
				t.setBlack(uncle, d)
				t.setRed(t.grandParent(cur, d), d)
				cur = t.grandParent(cur, d)
				continue
			}
			if t.isRightChild(cur, d) {
				cur = t.parent(cur, d)
				t.rotateLeft(cur, d)
			}
			t.setBlack(t.parent(cur, d), d)
			t.setRed(t.grandParent(cur, d), d)
			if g := t.grandParent(cur, d); g != Nil {
				t.rotateRight(g, d)
			}
		} else {
			uncle := t.left(t.grandParent(cur, d), d)
			if t.isRed(uncle, d) {
				t.setBlack(t.parent(cur, d), d)
				t.setBlack(uncle, d)
				t.setRed(t.grandParent(cur, d), d)
				cur = t.grandParent(cur, d)
				continue
			}
			if t.isLeftChild(cur, d) {
				cur = t.parent(cur, d)
				t.rotateRight(cur, d)
			}
			t.setBlack(t.parent(cur, d), d)
			t.setRed(t.grandParent(cur, d), d)
			if g := t.grandParent(cur, d); g != Nil {
				t.rotateLeft(g, d)
			}
		}
	}
	t.setBlack(t.root[d], d)
}

// deleteFixup restores the red-black properties of dimension d after a black
// node was spliced out. cur is the node that took its place, or the removed
// node itself when it had no children and has not yet been detached.
func (t *Tree[K, V]) deleteFixup(cur NodeID, d Dim) {
	for cur != t.root[d] && t.isBlack(cur, d) {
		if t.isLeftChild(cur, d) {
			sib := t.right(t.parent(cur, d), d)
			if t.isRed(sib, d) {
				t.setBlack(sib, d)
				t.setRed(t.parent(cur, d), d)
				t.rotateLeft(t.parent(cur, d), d)
				sib = t.right(t.parent(cur, d), d)
			}
			if t.isBlack(t.left(sib, d), d) && t.isBlack(t.right(sib, d), d) {
				t.setRed(sib, d)
				cur = t.parent(cur, d)
				continue
			}
			if t.isBlack(t.right(sib, d), d) {
				t.setBlack(t.left(sib, d), d)
				t.setRed(sib, d)
				t.rotateRight(sib, d)
				sib = t.right(t.parent(cur, d), d)
			}
			t.copyColor(t.parent(cur, d), sib, d)
			t.setBlack(t.parent(cur, d), d)
			t.setBlack(t.right(sib, d), d)
			t.rotateLeft(t.parent(cur, d), d)
			cur = t.root[d]
		} else {
			sib := t.left(t.parent(cur, d), d)
			if t.isRed(sib, d) {
				t.setBlack(sib, d)
				t.setRed(t.parent(cur, d), d)
				t.rotateRight(t.parent(cur, d), d)
				sib = t.left(t.parent(cur, d), d)
			}
			if t.isBlack(t.right(sib, d), d) && t.isBlack(t.left(sib, d), d) {
				t.setRed(sib, d)
				cur = t.parent(cur, d)
				continue
			}
			if t.isBlack(t.left(sib, d), d) {
				t.setBlack(t.right(sib, d), d)
				t.setRed(sib, d)
				t.rotateLeft(sib, d)
				sib = t.left(t.parent(cur, d), d)
			}
			t.copyColor(t.parent(cur, d), sib, d)
			t.setBlack(t.parent(cur, d), d)
			t.setBlack(t.left(sib, d), d)
			t.rotateRight(t.parent(cur, d), d)
			cur = t.root[d]
		}
	}
	t.setBlack(cur, d)
}
