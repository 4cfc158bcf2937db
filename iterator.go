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
	"github.com/ajwerner/bidimap/internal/abstract"
	"github.com/cockroachdb/errors"
)

// Iterator is a bidirectional, fail-fast iterator. It sits between two
// elements: Next and Previous step over an element and return it, so
// alternating them returns the same element twice.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	HasPrevious() bool
	Previous() (T, error)

	// Remove removes the mapping of the element last returned by Next or
	// Previous. It fails with ErrIllegalState if there is no such element or
	// it was already removed.
	Remove() error
}

// MapIterator iterates over the keys of a map and exposes the value of the
// current mapping.
type MapIterator[K, V any] interface {
	Iterator[K]

	// First positions the iterator before the first key; Last positions it
	// after the last key.
	First()
	Last()

	// Valid reports whether the iterator is positioned on a mapping.
	Valid() bool

	// Key and Value return the current mapping. It is illegal to call them if
	// the iterator is not valid.
	Key() K
	Value() V
}

type elemIterator[K, V, T any] struct {
	c    abstract.Cursor[K, V]
	data func(abstract.NodeID) T
}

func (it *elemIterator[K, V, T]) HasNext() bool     { return it.c.HasNext() }
func (it *elemIterator[K, V, T]) HasPrevious() bool { return it.c.HasPrev() }
func (it *elemIterator[K, V, T]) Remove() error     { return it.c.Remove() }

func (it *elemIterator[K, V, T]) Next() (x T, err error) {
	id, err := it.c.Next()
	if err != nil {
		return x, err
	}
	return it.data(id), nil
}

func (it *elemIterator[K, V, T]) Previous() (x T, err error) {
	id, err := it.c.Prev()
	if err != nil {
		return x, err
	}
	return it.data(id), nil
}

type cursor[K, V, A, B any] struct {
	c     abstract.Cursor[K, V]
	key   func(abstract.NodeID) A
	value func(abstract.NodeID) B
}

var _ MapIterator[int, string] = (*cursor[int, string, int, string])(nil)

func (it *cursor[K, V, A, B]) First()            { it.c.First() }
func (it *cursor[K, V, A, B]) Last()             { it.c.Last() }
func (it *cursor[K, V, A, B]) HasNext() bool     { return it.c.HasNext() }
func (it *cursor[K, V, A, B]) HasPrevious() bool { return it.c.HasPrev() }
func (it *cursor[K, V, A, B]) Remove() error     { return it.c.Remove() }

func (it *cursor[K, V, A, B]) Next() (a A, err error) {
	id, err := it.c.Next()
	if err != nil {
		return a, err
	}
	return it.key(id), nil
}

func (it *cursor[K, V, A, B]) Previous() (a A, err error) {
	id, err := it.c.Prev()
	if err != nil {
		return a, err
	}
	return it.key(id), nil
}

func (it *cursor[K, V, A, B]) Valid() bool {
	_, err := it.c.Current()
	return err == nil
}

func (it *cursor[K, V, A, B]) Key() A { return it.key(it.current()) }

func (it *cursor[K, V, A, B]) Value() B { return it.value(it.current()) }

func (it *cursor[K, V, A, B]) current() abstract.NodeID {
	id, err := it.c.Current()
	if err != nil {
		panic(errors.Wrap(err, "iterator is not positioned"))
	}
	return id
}
