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

package bidimap

import (
	"iter"

	"github.com/ajwerner/bidimap/internal/abstract"
	"github.com/cockroachdb/errors"
)

// Collection is a live view over the mappings of a map. Removing from a
// Collection removes the whole mapping from the map; adding is not
// supported.
type Collection[T any] interface {
	Len() int
	IsEmpty() bool
	Contains(T) bool

	// Remove removes the mapping holding the element and reports whether
	// one existed.
	Remove(T) bool
	Clear()

	// Add always fails with ErrUnsupportedOperation.
	Add(T) error

	Iterator() Iterator[T]
	All() iter.Seq[T]

	// Slice returns the elements in order.
	Slice() []T
}

// view projects one element out of each node, in the order of one dimension.
type view[K, V, T any] struct {
	t      *abstract.Tree[K, V]
	order  abstract.Dim
	data   func(abstract.NodeID) T
	lookup func(T) abstract.NodeID
}

func (v *view[K, V, T]) Len() int      { return v.t.Len() }
func (v *view[K, V, T]) IsEmpty() bool { return v.t.Len() == 0 }
func (v *view[K, V, T]) Clear()        { v.t.Clear() }

func (v *view[K, V, T]) Contains(x T) bool {
	return v.lookup(x) != abstract.Nil
}

func (v *view[K, V, T]) Remove(x T) bool {
	id := v.lookup(x)
	if id == abstract.Nil {
		return false
	}
	v.t.Delete(id)
	return true
}

func (v *view[K, V, T]) Add(x T) error {
	return errors.Wrapf(ErrUnsupportedOperation, "cannot add %v to a view", x)
}

func (v *view[K, V, T]) Iterator() Iterator[T] {
	return &elemIterator[K, V, T]{c: v.t.MakeCursor(v.order), data: v.data}
}

func (v *view[K, V, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := v.t.MakeCursor(v.order)
		for c.HasNext() {
			id, err := c.Next()
			if err != nil {
				panic(err)
			}
			if !yield(v.data(id)) {
				return
			}
		}
	}
}

func (v *view[K, V, T]) Slice() []T {
	out := make([]T, 0, v.t.Len())
	for x := range v.All() {
		out = append(out, x)
	}
	return out
}
