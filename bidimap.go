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

// Package bidimap provides a sorted bidirectional map. Each mapping is stored
// in a single node that belongs to two red-black trees at once, one ordered
// by key and one ordered by value, so lookups and ordered traversal are
// O(log n) in either direction without keeping two copies of the data.
//
// Both keys and values are unique. Storing a mapping evicts any mapping that
// shares its key and any mapping that shares its value.
//
// A Map is not safe for concurrent mutation. Iterators and views fail fast:
// once the map is structurally modified other than through the iterator, the
// iterator reports ErrConcurrentModification.
package bidimap

import (
	"iter"
	"reflect"

	"github.com/ajwerner/bidimap/internal/abstract"
	"golang.org/x/exp/constraints"
)

// OrderedBidiMap is a sorted map that can also be queried by value. Keys are
// ordered by the key comparator; Inverse exposes the same mappings keyed and
// ordered by value.
type OrderedBidiMap[K, V any] interface {
	Len() int
	IsEmpty() bool

	ContainsKey(K) bool
	ContainsValue(V) bool

	// Get returns the value mapped from k.
	Get(k K) (V, bool)

	// GetKey returns the key mapped to v.
	GetKey(v V) (K, bool)

	// Put maps k to v, first removing any mapping from k and any mapping to
	// v. It returns the value previously mapped from k. A nil key or value
	// fails with ErrInvalidArgument and leaves the map unchanged.
	Put(k K, v V) (prev V, replaced bool, err error)

	// PutAll puts each pair of seq in turn, stopping at the first error.
	PutAll(seq iter.Seq2[K, V]) error

	// Remove removes the mapping from k and returns its value.
	Remove(k K) (V, bool)

	// RemoveValue removes the mapping to v and returns its key.
	RemoveValue(v V) (K, bool)

	Clear()

	// FirstKey and LastKey fail with ErrNoSuchElement on an empty map.
	FirstKey() (K, error)
	LastKey() (K, error)

	// NextKey and PreviousKey return the neighbours of k in key order. They
	// report false if k is absent or has no such neighbour.
	NextKey(k K) (K, bool)
	PreviousKey(k K) (K, bool)

	// KeySet, Values and EntrySet return live views in key order.
	KeySet() Collection[K]
	Values() Collection[V]
	EntrySet() Collection[Entry[K, V]]

	// Inverse returns the map with the roles of keys and values swapped. It
	// shares storage with the receiver; the inverse of the inverse is the
	// receiver itself.
	Inverse() OrderedBidiMap[V, K]

	// Iterator returns a fail-fast iterator positioned before the first key.
	Iterator() MapIterator[K, V]

	// All and Backward range over the mappings in ascending and descending
	// key order. A structural modification made by the loop body causes a
	// panic with ErrConcurrentModification at the next step.
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]

	// Equal reports whether o holds the same mappings, comparing values with
	// the value comparator.
	Equal(o OrderedBidiMap[K, V]) bool

	// Verify checks the internal invariants of both orderings.
	Verify() error

	String() string
}

// Entry is a key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an OrderedBidiMap backed by a dual-indexed red-black tree.
type Map[K, V any] struct {
	side[K, V, K, V]
}

var _ OrderedBidiMap[string, int] = (*Map[string, int])(nil)

// Make constructs an empty Map. Both comparators must be total orders; Make
// panics if either is nil.
func Make[K, V any](
	compareKeys func(K, K) int, compareValues func(V, V) int, opts ...Option,
) *Map[K, V] {
	o := makeOptions(opts)
	t := abstract.MakeTree(abstract.Config[K, V]{
		CompareKeys:     compareKeys,
		CompareValues:   compareValues,
		Logger:          o.logger,
		InitialCapacity: o.capacity,
	})
	m := &Map[K, V]{}
	inv := &side[K, V, V, K]{
		t:             t,
		d:             abstract.ValueDim,
		key:           t.Value,
		value:         t.Key,
		lookupKey:     t.LookupValue,
		lookupValue:   t.LookupKey,
		isNilKey:      nilCheck[V](),
		isNilValue:    nilCheck[K](),
		compareValues: compareKeys,
		put: func(v V, k K) (K, bool) {
			ev := t.Put(k, v)
			return ev.Key, ev.HadValue
		},
		other: m,
	}
	m.side = side[K, V, K, V]{
		t:             t,
		d:             abstract.KeyDim,
		key:           t.Key,
		value:         t.Value,
		lookupKey:     t.LookupKey,
		lookupValue:   t.LookupValue,
		isNilKey:      inv.isNilValue,
		isNilValue:    inv.isNilKey,
		compareValues: compareValues,
		put: func(k K, v V) (V, bool) {
			ev := t.Put(k, v)
			return ev.Value, ev.HadKey
		},
		other: inv,
	}
	return m
}

// MakeOrdered constructs an empty Map over naturally ordered keys and values.
// NaN sorts before every other float and equal to itself.
func MakeOrdered[K, V constraints.Ordered](opts ...Option) *Map[K, V] {
	return Make(compareOrdered[K], compareOrdered[V], opts...)
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// nilCheck returns a predicate reporting whether a T is nil. Types that
// cannot be nil get a predicate that never inspects its argument.
func nilCheck[T any]() func(T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return isNil[T]
	default:
		return func(T) bool { return false }
	}
}

func isNil[T any](x T) bool {
	v := reflect.ValueOf(any(x))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
