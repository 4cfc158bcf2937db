package abstract

// LowLevelCursor is exposed to developers within this module for inspecting
// the shape of one dimension of the tree. It walks links directly and does
// not check for concurrent modification.
type LowLevelCursor[K, V any] Cursor[K, V]

// LowLevel converts a cursor to a LowLevelCursor positioned at the root of
// the cursor's dimension. Given this package is internal, callers outside of
// this module cannot construct a LowLevelCursor.
func LowLevel[K, V any](c *Cursor[K, V]) *LowLevelCursor[K, V] {
	ll := (*LowLevelCursor[K, V])(c)
	ll.last = c.t.root[c.d]
	return ll
}

// Node returns the node the cursor is positioned at, or Nil.
func (ll *LowLevelCursor[K, V]) Node() NodeID { return ll.last }

// IsBlack reports the color of the current node in the cursor's dimension.
func (ll *LowLevelCursor[K, V]) IsBlack() bool { return ll.t.isBlack(ll.last, ll.d) }

// IsLeaf returns true if the current node has no children.
func (ll *LowLevelCursor[K, V]) IsLeaf() bool {
	return ll.t.left(ll.last, ll.d) == Nil && ll.t.right(ll.last, ll.d) == Nil
}

// DescendLeft moves to the left child. It returns false, without moving, if
// there is none.
func (ll *LowLevelCursor[K, V]) DescendLeft() bool {
	return ll.moveTo(ll.t.left(ll.last, ll.d))
}

// DescendRight moves to the right child. It returns false, without moving, if
// there is none.
func (ll *LowLevelCursor[K, V]) DescendRight() bool {
	return ll.moveTo(ll.t.right(ll.last, ll.d))
}

// Ascend moves to the parent. It returns false, without moving, at the root.
func (ll *LowLevelCursor[K, V]) Ascend() bool {
	return ll.moveTo(ll.t.parent(ll.last, ll.d))
}

// Depth returns the number of nodes above the current node.
func (ll *LowLevelCursor[K, V]) Depth() int {
	depth := 0
	for p := ll.t.parent(ll.last, ll.d); p != Nil; p = ll.t.parent(p, ll.d) {
		depth++
	}
	return depth
}

func (ll *LowLevelCursor[K, V]) moveTo(id NodeID) bool {
	if id == Nil {
		return false
	}
	ll.last = id
	return true
}
