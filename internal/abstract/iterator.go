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

import "github.com/cockroachdb/errors"

// Cursor is responsible for fail-fast traversal of one dimension of a Tree.
//
// A Cursor sits between two nodes. Next and Prev step over a node and make it
// current; Remove deletes the current node. Any structural change to the Tree
// not made through the Cursor causes the next Next, Prev or Remove to fail
// with ErrConcurrentModification.
type Cursor[K, V any] struct {
	t *Tree[K, V]
	d Dim

	// last is the node most recently stepped over, or Nil if there is no
	// current node.
	last       NodeID
	next, prev NodeID
	expected   uint64
}

// MakeCursor returns a Cursor positioned before the least node of dimension
// d.
func (t *Tree[K, V]) MakeCursor(d Dim) Cursor[K, V] {
	c := Cursor[K, V]{t: t, d: d}
	c.First()
	return c
}

// First positions the cursor before the least node and accepts the current
// state of the tree.
func (c *Cursor[K, V]) First() {
	c.expected = c.t.mods
	c.last, c.prev = Nil, Nil
	c.next = c.t.First(c.d)
}

// Last positions the cursor after the greatest node and accepts the current
// state of the tree.
func (c *Cursor[K, V]) Last() {
	c.expected = c.t.mods
	c.last, c.next = Nil, Nil
	c.prev = c.t.Last(c.d)
}

// Dim returns the dimension the cursor traverses.
func (c *Cursor[K, V]) Dim() Dim { return c.d }

// HasNext reports whether a call to Next would produce a node.
func (c *Cursor[K, V]) HasNext() bool { return c.next != Nil }

// HasPrev reports whether a call to Prev would produce a node.
func (c *Cursor[K, V]) HasPrev() bool { return c.prev != Nil }

// Next steps forward over the next node and returns it. Calling Next after
// Prev returns the same node again.
func (c *Cursor[K, V]) Next() (NodeID, error) {
	if err := c.checkModifications(); err != nil {
		return Nil, err
	}
	if c.next == Nil {
		return Nil, errors.WithStack(ErrNoSuchElement)
	}
	c.last = c.next
	c.prev = c.next
	c.next = c.t.nextGreater(c.next, c.d)
	return c.last, nil
}

// Prev steps backward over the previous node and returns it. Calling Prev
// after Next returns the same node again.
func (c *Cursor[K, V]) Prev() (NodeID, error) {
	if err := c.checkModifications(); err != nil {
		return Nil, err
	}
	if c.prev == Nil {
		return Nil, errors.WithStack(ErrNoSuchElement)
	}
	c.last = c.prev
	c.next = c.prev
	c.prev = c.t.nextSmaller(c.prev, c.d)
	return c.last, nil
}

// Current returns the node most recently produced by Next or Prev. It fails
// with ErrIllegalState if there is none or it has been removed.
func (c *Cursor[K, V]) Current() (NodeID, error) {
	if c.last == Nil {
		return Nil, errors.WithStack(ErrIllegalState)
	}
	if err := c.checkModifications(); err != nil {
		return Nil, err
	}
	return c.last, nil
}

// Remove deletes the current node from the tree.
func (c *Cursor[K, V]) Remove() error {
	if c.last == Nil {
		return errors.Wrap(ErrIllegalState, "remove requires a preceding next or prev")
	}
	if err := c.checkModifications(); err != nil {
		return err
	}
	// The neighbour on the side the cursor came from is the deleted node;
	// replace it before the links go away.
	if c.next == c.last {
		c.next = c.t.nextGreater(c.last, c.d)
	} else {
		c.prev = c.t.nextSmaller(c.last, c.d)
	}
	c.t.Delete(c.last)
	c.expected = c.t.mods
	c.last = Nil
	return nil
}

func (c *Cursor[K, V]) checkModifications() error {
	if c.t.mods != c.expected {
		return errors.WithStack(ErrConcurrentModification)
	}
	return nil
}
