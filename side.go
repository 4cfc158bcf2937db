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
	"fmt"
	"iter"
	"strings"

	"github.com/ajwerner/bidimap/internal/abstract"
	"github.com/cockroachdb/errors"
)

// side implements OrderedBidiMap[A, B] over a tree of K to V mappings. The
// forward map is a side with A=K ordered by KeyDim; the inverse is a side
// with A=V ordered by ValueDim. Both share the tree.
type side[K, V, A, B any] struct {
	t *abstract.Tree[K, V]

	// d is the dimension in which A is ordered.
	d abstract.Dim

	key         func(abstract.NodeID) A
	value       func(abstract.NodeID) B
	lookupKey   func(A) abstract.NodeID
	lookupValue func(B) abstract.NodeID
	isNilKey    func(A) bool
	isNilValue  func(B) bool

	compareValues func(B, B) int

	// put stores a mapping and returns what was formerly mapped from a.
	put func(a A, b B) (B, bool)

	other OrderedBidiMap[B, A]

	keySet   *view[K, V, A]
	values   *view[K, V, B]
	entrySet *view[K, V, Entry[A, B]]
}

func (s *side[K, V, A, B]) findKey(a A) abstract.NodeID {
	if s.isNilKey(a) {
		return abstract.Nil
	}
	return s.lookupKey(a)
}

func (s *side[K, V, A, B]) findValue(b B) abstract.NodeID {
	if s.isNilValue(b) {
		return abstract.Nil
	}
	return s.lookupValue(b)
}

func (s *side[K, V, A, B]) findEntry(e Entry[A, B]) abstract.NodeID {
	id := s.findKey(e.Key)
	if id == abstract.Nil || s.isNilValue(e.Value) ||
		s.compareValues(s.value(id), e.Value) != 0 {
		return abstract.Nil
	}
	return id
}

func (s *side[K, V, A, B]) entry(id abstract.NodeID) Entry[A, B] {
	return Entry[A, B]{Key: s.key(id), Value: s.value(id)}
}

// Len returns the number of mappings.
func (s *side[K, V, A, B]) Len() int { return s.t.Len() }

// IsEmpty reports whether the map holds no mappings.
func (s *side[K, V, A, B]) IsEmpty() bool { return s.t.Len() == 0 }

// ContainsKey reports whether a mapping from a exists.
func (s *side[K, V, A, B]) ContainsKey(a A) bool {
	return s.findKey(a) != abstract.Nil
}

// ContainsValue reports whether a mapping to b exists.
func (s *side[K, V, A, B]) ContainsValue(b B) bool {
	return s.findValue(b) != abstract.Nil
}

// Get returns the value mapped from a.
func (s *side[K, V, A, B]) Get(a A) (b B, ok bool) {
	id := s.findKey(a)
	if id == abstract.Nil {
		return b, false
	}
	return s.value(id), true
}

// GetKey returns the key mapped to b.
func (s *side[K, V, A, B]) GetKey(b B) (a A, ok bool) {
	id := s.findValue(b)
	if id == abstract.Nil {
		return a, false
	}
	return s.key(id), true
}

// Put maps a to b, evicting any mapping from a and any mapping to b. It
// returns the value formerly mapped from a.
func (s *side[K, V, A, B]) Put(a A, b B) (prev B, replaced bool, err error) {
	if s.isNilKey(a) {
		return prev, false, errors.Wrap(ErrInvalidArgument, "key cannot be nil")
	}
	if s.isNilValue(b) {
		return prev, false, errors.Wrapf(ErrInvalidArgument, "value for key %v cannot be nil", a)
	}
	prev, replaced = s.put(a, b)
	return prev, replaced, nil
}

// PutAll puts each pair of seq in turn. It stops at the first pair that
// cannot be stored; pairs before it remain stored.
func (s *side[K, V, A, B]) PutAll(seq iter.Seq2[A, B]) error {
	for a, b := range seq {
		if _, _, err := s.Put(a, b); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes the mapping from a and returns its value.
func (s *side[K, V, A, B]) Remove(a A) (b B, ok bool) {
	id := s.findKey(a)
	if id == abstract.Nil {
		return b, false
	}
	b = s.value(id)
	s.t.Delete(id)
	return b, true
}

// RemoveValue removes the mapping to b and returns its key.
func (s *side[K, V, A, B]) RemoveValue(b B) (a A, ok bool) {
	id := s.findValue(b)
	if id == abstract.Nil {
		return a, false
	}
	a = s.key(id)
	s.t.Delete(id)
	return a, true
}

// Clear removes every mapping.
func (s *side[K, V, A, B]) Clear() { s.t.Clear() }

// FirstKey returns the least key.
func (s *side[K, V, A, B]) FirstKey() (a A, err error) {
	id := s.t.First(s.d)
	if id == abstract.Nil {
		return a, errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	return s.key(id), nil
}

// LastKey returns the greatest key.
func (s *side[K, V, A, B]) LastKey() (a A, err error) {
	id := s.t.Last(s.d)
	if id == abstract.Nil {
		return a, errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	return s.key(id), nil
}

// NextKey returns the key following a.
func (s *side[K, V, A, B]) NextKey(a A) (next A, ok bool) {
	id := s.t.Next(s.findKey(a), s.d)
	if id == abstract.Nil {
		return next, false
	}
	return s.key(id), true
}

// PreviousKey returns the key preceding a.
func (s *side[K, V, A, B]) PreviousKey(a A) (prev A, ok bool) {
	id := s.t.Prev(s.findKey(a), s.d)
	if id == abstract.Nil {
		return prev, false
	}
	return s.key(id), true
}

// KeySet returns a live view of the keys.
func (s *side[K, V, A, B]) KeySet() Collection[A] {
	if s.keySet == nil {
		s.keySet = &view[K, V, A]{t: s.t, order: s.d, data: s.key, lookup: s.findKey}
	}
	return s.keySet
}

// Values returns a live view of the values in key order.
func (s *side[K, V, A, B]) Values() Collection[B] {
	if s.values == nil {
		s.values = &view[K, V, B]{t: s.t, order: s.d, data: s.value, lookup: s.findValue}
	}
	return s.values
}

// EntrySet returns a live view of the mappings in key order.
func (s *side[K, V, A, B]) EntrySet() Collection[Entry[A, B]] {
	if s.entrySet == nil {
		s.entrySet = &view[K, V, Entry[A, B]]{
			t: s.t, order: s.d, data: s.entry, lookup: s.findEntry,
		}
	}
	return s.entrySet
}

// Inverse returns the map keyed by value.
func (s *side[K, V, A, B]) Inverse() OrderedBidiMap[B, A] { return s.other }

// Iterator returns an iterator positioned before the first key.
func (s *side[K, V, A, B]) Iterator() MapIterator[A, B] {
	return &cursor[K, V, A, B]{c: s.t.MakeCursor(s.d), key: s.key, value: s.value}
}

// All ranges over the mappings in ascending key order.
func (s *side[K, V, A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		c := s.t.MakeCursor(s.d)
		for c.HasNext() {
			id, err := c.Next()
			if err != nil {
				panic(err)
			}
			if !yield(s.key(id), s.value(id)) {
				return
			}
		}
	}
}

// Backward ranges over the mappings in descending key order.
func (s *side[K, V, A, B]) Backward() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		c := s.t.MakeCursor(s.d)
		c.Last()
		for c.HasPrev() {
			id, err := c.Prev()
			if err != nil {
				panic(err)
			}
			if !yield(s.key(id), s.value(id)) {
				return
			}
		}
	}
}

// Equal reports whether o holds exactly the same mappings.
func (s *side[K, V, A, B]) Equal(o OrderedBidiMap[A, B]) bool {
	if o == nil || o.Len() != s.Len() {
		return false
	}
	for a, b := range s.All() {
		ob, ok := o.Get(a)
		if !ok || s.compareValues(b, ob) != 0 {
			return false
		}
	}
	return true
}

// Verify checks the internal invariants of both orderings.
func (s *side[K, V, A, B]) Verify() error { return s.t.Check() }

// String formats the mappings in key order as {k1=v1, k2=v2}.
func (s *side[K, V, A, B]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for k, v := range s.All() {
		fmt.Fprintf(&b, "%s%v=%v", sep, k, v)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}
