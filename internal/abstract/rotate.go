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

// The accessors below tolerate Nil so that the fixup code can follow the
// textbook formulation. Nil reads as a black node with no links; writes to
// Nil are dropped.

func (t *Tree[K, V]) left(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	return t.np.get(id).left[d]
}

func (t *Tree[K, V]) right(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	return t.np.get(id).right[d]
}

func (t *Tree[K, V]) parent(id NodeID, d Dim) NodeID {
	if id == Nil {
		return Nil
	}
	return t.np.get(id).parent[d]
}

func (t *Tree[K, V]) grandParent(id NodeID, d Dim) NodeID {
	return t.parent(t.parent(id, d), d)
}

func (t *Tree[K, V]) setParent(id, parent NodeID, d Dim) {
	if id != Nil {
		t.np.get(id).parent[d] = parent
	}
}

func (t *Tree[K, V]) isBlack(id NodeID, d Dim) bool {
	return id == Nil || t.np.get(id).black[d]
}

func (t *Tree[K, V]) isRed(id NodeID, d Dim) bool {
	return !t.isBlack(id, d)
}

func (t *Tree[K, V]) setBlack(id NodeID, d Dim) {
	if id != Nil {
		t.np.get(id).black[d] = true
	}
}

func (t *Tree[K, V]) setRed(id NodeID, d Dim) {
	if id != Nil {
		t.np.get(id).black[d] = false
	}
}

// copyColor paints to with the color of from, or black if from is Nil.
func (t *Tree[K, V]) copyColor(from, to NodeID, d Dim) {
	if to != Nil {
		t.np.get(to).black[d] = t.isBlack(from, d)
	}
}

// isLeftChild reports whether id is the left child of its parent. Nil counts
// as a left child so that the phantom-leaf fixup can proceed.
func (t *Tree[K, V]) isLeftChild(id NodeID, d Dim) bool {
	if id == Nil {
		return true
	}
	p := t.parent(id, d)
	return p != Nil && t.left(p, d) == id
}

func (t *Tree[K, V]) isRightChild(id NodeID, d Dim) bool {
	if id == Nil {
		return true
	}
	p := t.parent(id, d)
	return p != Nil && t.right(p, d) == id
}

// replaceChild points the link of parent that referred to old at repl. A Nil
// parent means old was the root.
func (t *Tree[K, V]) replaceChild(parent, old, repl NodeID, d Dim) {
	if parent == Nil {
		t.root[d] = repl
		return
	}
	p := t.np.get(parent)
	if p.left[d] == old {
		p.left[d] = repl
	} else {
		p.right[d] = repl
	}
}

//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
func (t *Tree[K, V]) rotateLeft(x NodeID, d Dim) {
	y := t.right(x, d)
	b := t.left(y, d)
	t.np.get(x).right[d] = b
	t.setParent(b, x, d)
	p := t.parent(x, d)
	t.setParent(y, p, d)
	t.replaceChild(p, x, y, d)
	t.np.get(y).left[d] = x
	t.setParent(x, y, d)
}

//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
func (t *Tree[K, V]) rotateRight(y NodeID, d Dim) {
	x := t.left(y, d)
	b := t.right(x, d)
	t.np.get(y).left[d] = b
	t.setParent(b, y, d)
	p := t.parent(y, d)
	t.setParent(x, p, d)
	t.replaceChild(p, y, x, d)
	t.np.get(x).right[d] = y
	t.setParent(y, x, d)
}

// swapPosition exchanges the places of x and y in the tree of dimension d,
// including their colors. The payloads stay with their nodes, so NodeIDs held
// by cursors keep referring to the same mappings.
func (t *Tree[K, V]) swapPosition(x, y NodeID, d Dim) {
	xn, yn := t.np.get(x), t.np.get(y)
	xParent, xLeft, xRight := xn.parent[d], xn.left[d], xn.right[d]
	yParent, yLeft, yRight := yn.parent[d], yn.left[d], yn.right[d]
	xWasLeft := xParent != Nil && t.left(xParent, d) == x
	yWasLeft := yParent != Nil && t.left(yParent, d) == y

	if x == yParent {
		xn.parent[d] = y
		if yWasLeft {
			yn.left[d], yn.right[d] = x, xRight
		} else {
			yn.right[d], yn.left[d] = x, xLeft
		}
	} else {
		xn.parent[d] = yParent
		if yParent != Nil {
			if yWasLeft {
				t.np.get(yParent).left[d] = x
			} else {
				t.np.get(yParent).right[d] = x
			}
		}
		yn.left[d], yn.right[d] = xLeft, xRight
	}

	if y == xParent {
		yn.parent[d] = x
		if xWasLeft {
			xn.left[d], xn.right[d] = y, yRight
		} else {
			xn.right[d], xn.left[d] = y, yLeft
		}
	} else {
		yn.parent[d] = xParent
		if xParent != Nil {
			if xWasLeft {
				t.np.get(xParent).left[d] = y
			} else {
				t.np.get(xParent).right[d] = y
			}
		}
		xn.left[d], xn.right[d] = yLeft, yRight
	}

	t.setParent(xn.left[d], x, d)
	t.setParent(xn.right[d], x, d)
	t.setParent(yn.left[d], y, d)
	t.setParent(yn.right[d], y, d)

	xn.black[d], yn.black[d] = yn.black[d], xn.black[d]

	switch t.root[d] {
	case x:
		t.root[d] = y
	case y:
		t.root[d] = x
	}
}
