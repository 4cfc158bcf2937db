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
	"cmp"
	"iter"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr/testr"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func makeTestMap(t *testing.T, kvs ...any) *Map[string, int] {
	m := MakeOrdered[string, int](
		WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})),
	)
	for i := 0; i < len(kvs); i += 2 {
		_, _, err := m.Put(kvs[i].(string), kvs[i+1].(int))
		require.NoError(t, err)
	}
	return m
}

func pairs[K, V any](kvs ...Entry[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range kvs {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected a panic with an error, got %v", r)
		require.True(t, errors.Is(err, target), "unexpected error: %v", err)
	}()
	f()
}

func TestMapBasics(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	require.Equal(t, 3, m.Len())
	require.False(t, m.IsEmpty())

	first, err := m.FirstKey()
	require.NoError(t, err)
	require.Equal(t, "a", first)
	next, ok := m.NextKey("a")
	require.True(t, ok)
	require.Equal(t, "b", next)
	k, ok := m.GetKey(2)
	require.True(t, ok)
	require.Equal(t, "b", k)

	_, ok = m.NextKey("c")
	require.False(t, ok)
	_, ok = m.PreviousKey("a")
	require.False(t, ok)
	_, ok = m.NextKey("missing")
	require.False(t, ok)
	prev, ok := m.PreviousKey("c")
	require.True(t, ok)
	require.Equal(t, "b", prev)

	v, ok := m.Remove("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	last, err := m.LastKey()
	require.NoError(t, err)
	require.Equal(t, "b", last)
	_, ok = m.Remove("c")
	require.False(t, ok)

	k, ok = m.RemoveValue(1)
	require.True(t, ok)
	require.Equal(t, "a", k)
	require.Equal(t, "{b=2}", m.String())
	require.NoError(t, m.Verify())
}

func TestMapPutEvicts(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)

	prev, replaced, err := m.Put("a", 2)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, 1, prev)
	require.False(t, m.ContainsKey("b"))
	require.False(t, m.ContainsValue(1))
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, "{a=2, c=3}", m.String())

	k, ok := m.Inverse().Get(2)
	require.True(t, ok)
	require.Equal(t, "a", k)

	// A new key with a used value silently drops the old mapping.
	prev, replaced, err = m.Put("d", 3)
	require.NoError(t, err)
	require.False(t, replaced)
	require.Equal(t, 0, prev)
	require.False(t, m.ContainsKey("c"))

	// Storing an existing pair changes nothing visible.
	prev, replaced, err = m.Put("d", 3)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, 3, prev)
	require.Equal(t, "{a=2, d=3}", m.String())
	require.NoError(t, m.Verify())
}

func TestMapEmpty(t *testing.T) {
	m := makeTestMap(t)
	require.True(t, m.IsEmpty())
	require.Equal(t, "{}", m.String())
	_, err := m.FirstKey()
	require.True(t, errors.Is(err, ErrNoSuchElement))
	_, err = m.LastKey()
	require.True(t, errors.Is(err, ErrNoSuchElement))
	_, err = m.Inverse().FirstKey()
	require.True(t, errors.Is(err, ErrNoSuchElement))
	require.Empty(t, m.KeySet().Slice())
	require.NoError(t, m.Verify())
}

func TestMapClear(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2)
	keys := m.KeySet()
	m.Clear()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, keys.Len())
	require.True(t, m.Inverse().IsEmpty())

	_, _, err := m.Put("a", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, keys.Slice())
}

func TestMapNilArguments(t *testing.T) {
	one, two := 1, 2
	m := Make[*int, string](func(a, b *int) int {
		return cmp.Compare(*a, *b)
	}, strings.Compare)

	_, _, err := m.Put(nil, "x")
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.Equal(t, 0, m.Len())

	_, _, err = m.Put(&one, "x")
	require.NoError(t, err)
	require.False(t, m.ContainsKey(nil))
	_, ok := m.Get(nil)
	require.False(t, ok)
	_, ok = m.Remove(nil)
	require.False(t, ok)
	_, ok = m.Inverse().GetKey(nil)
	require.False(t, ok)

	_, _, err = m.Inverse().Put("y", nil)
	require.True(t, errors.Is(err, ErrInvalidArgument))

	// PutAll keeps what it stored before the failing pair.
	err = m.PutAll(pairs(
		Entry[*int, string]{&two, "y"},
		Entry[*int, string]{nil, "z"},
	))
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.Equal(t, 2, m.Len())
	require.False(t, m.ContainsValue("z"))

	// Func values are checked the same way.
	fm := Make[int, func()](cmp.Compare[int], func(a, b func()) int { return 0 })
	_, _, err = fm.Put(1, nil)
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMapOrderedNaN(t *testing.T) {
	m := MakeOrdered[float64, string]()
	for _, f := range []float64{2, math.NaN(), -1} {
		_, _, err := m.Put(f, "")
		require.NoError(t, err)
	}
	// Every put used the same value, so only the last mapping survives.
	require.Equal(t, 1, m.Len())

	_, _, err := m.Put(math.NaN(), "nan")
	require.NoError(t, err)
	_, _, err = m.Put(math.NaN(), "nan2")
	require.NoError(t, err)
	first, err := m.FirstKey()
	require.NoError(t, err)
	require.True(t, math.IsNaN(first))
	require.Equal(t, 2, m.Len())
	require.NoError(t, m.Verify())
}

func TestMapInverse(t *testing.T) {
	m := makeTestMap(t, "a", 3, "b", 1, "c", 2)
	inv := m.Inverse()
	require.Same(t, m, inv.Inverse())
	require.Same(t, inv, m.Inverse())

	require.Equal(t, []string{"a", "b", "c"}, m.KeySet().Slice())
	require.Equal(t, []int{3, 1, 2}, m.Values().Slice())
	require.Equal(t, []int{1, 2, 3}, inv.KeySet().Slice())
	require.Equal(t, []string{"b", "c", "a"}, inv.Values().Slice())
	require.Equal(t, []Entry[int, string]{{1, "b"}, {2, "c"}, {3, "a"}},
		inv.EntrySet().Slice())
	require.Equal(t, "{1=b, 2=c, 3=a}", inv.String())

	first, err := inv.FirstKey()
	require.NoError(t, err)
	require.Equal(t, 1, first)
	next, ok := inv.NextKey(1)
	require.True(t, ok)
	require.Equal(t, 2, next)

	prev, replaced, err := inv.Put(4, "d")
	require.NoError(t, err)
	require.False(t, replaced)
	require.Equal(t, "", prev)
	v, ok := m.Get("d")
	require.True(t, ok)
	require.Equal(t, 4, v)

	// Putting through the inverse evicts by the inverse key.
	prev, replaced, err = inv.Put(1, "z")
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, "b", prev)
	require.False(t, m.ContainsKey("b"))

	// And by the inverse value.
	_, _, err = inv.Put(9, "a")
	require.NoError(t, err)
	require.False(t, m.ContainsValue(3))

	v2, ok := inv.RemoveValue("z")
	require.True(t, ok)
	require.Equal(t, 1, v2)
	require.Equal(t, "{2=c, 4=d, 9=a}", inv.String())
	require.Equal(t, "{a=9, c=2, d=4}", m.String())
	require.True(t, m.Equal(inv.Inverse()))
	require.NoError(t, inv.Verify())
}

func TestMapViews(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3, "d", 4)
	keys, values, entries := m.KeySet(), m.Values(), m.EntrySet()
	require.Same(t, keys, m.KeySet())

	require.True(t, keys.Contains("a"))
	require.False(t, keys.Contains("z"))
	require.True(t, values.Contains(4))
	require.True(t, entries.Contains(Entry[string, int]{"a", 1}))
	require.False(t, entries.Contains(Entry[string, int]{"a", 2}))

	require.True(t, keys.Remove("b"))
	require.False(t, keys.Remove("b"))
	require.True(t, values.Remove(3))
	require.False(t, entries.Remove(Entry[string, int]{"a", 2}))
	require.True(t, entries.Remove(Entry[string, int]{"a", 1}))
	require.Equal(t, "{d=4}", m.String())
	require.Equal(t, 1, values.Len())

	require.True(t, errors.Is(keys.Add("x"), ErrUnsupportedOperation))
	require.True(t, errors.Is(entries.Add(Entry[string, int]{"x", 9}), ErrUnsupportedOperation))
	require.Equal(t, 1, m.Len())

	values.Clear()
	require.True(t, keys.IsEmpty())
}

func TestViewIterator(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	it := m.Values().Iterator()
	require.False(t, it.HasPrevious())
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, it.Remove())
	require.True(t, errors.Is(it.Remove(), ErrIllegalState))
	require.False(t, m.ContainsKey("a"))

	var rest []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		rest = append(rest, v)
	}
	require.Equal(t, []int{2, 3}, rest)
	v, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	var got []Entry[string, int]
	for e := range m.EntrySet().All() {
		got = append(got, e)
	}
	require.Equal(t, []Entry[string, int]{{"b", 2}, {"c", 3}}, got)
}

func TestMapIterator(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	it := m.Iterator()
	require.False(t, it.Valid())
	requirePanicsWith(t, ErrIllegalState, func() { it.Key() })

	k, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", k)
	require.True(t, it.Valid())
	require.Equal(t, "a", it.Key())
	require.Equal(t, 1, it.Value())

	k, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, "a", k)
	_, err = it.Previous()
	require.True(t, errors.Is(err, ErrNoSuchElement))

	_, err = it.Next()
	require.NoError(t, err)
	k, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "b", k)
	require.NoError(t, it.Remove())
	require.False(t, it.Valid())
	requirePanicsWith(t, ErrIllegalState, func() { it.Value() })
	require.Equal(t, "{a=1, c=3}", m.String())

	it.Last()
	k, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, "c", k)
	require.Equal(t, 3, it.Value())

	inv := m.Inverse().Iterator()
	v, err := inv.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, "a", inv.Value())
}

func TestMapIteratorFailFast(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	it := m.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	m.Remove("a")
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrConcurrentModification))
	require.True(t, errors.Is(it.Remove(), ErrConcurrentModification))
	requirePanicsWith(t, ErrConcurrentModification, func() { it.Key() })

	// Changes through the inverse count too.
	it.First()
	_, err = it.Next()
	require.NoError(t, err)
	_, _, err = m.Inverse().Put(7, "z")
	require.NoError(t, err)
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrConcurrentModification))

	// As do changes through a view.
	vit := m.KeySet().Iterator()
	m.Values().Remove(7)
	_, err = vit.Next()
	require.True(t, errors.Is(err, ErrConcurrentModification))
}

func TestMapRange(t *testing.T) {
	m := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	var keys []string
	var vals []int
	for k, v := range m.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.Equal(t, []int{1, 2, 3}, vals)

	keys = keys[:0]
	for k := range m.Backward() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	require.Equal(t, []string{"c", "b"}, keys)

	requirePanicsWith(t, ErrConcurrentModification, func() {
		for k := range m.All() {
			m.Remove(k)
		}
	})
}

func TestMapPutAllAndEqual(t *testing.T) {
	a := makeTestMap(t, "a", 1, "b", 2, "c", 3)
	b := makeTestMap(t)
	require.NoError(t, b.PutAll(a.Backward()))
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.True(t, a.Inverse().Equal(b.Inverse()))
	require.False(t, a.Equal(nil))

	_, _, err := b.Put("c", 4)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
	_, _, err = b.Put("d", 3)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

// TestMapRandomized checks the map against a pair of builtin maps kept in
// sync by hand.
func TestMapRandomized(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := MakeOrdered[int, int](WithInitialCapacity(64))
	fwd, rev := map[int]int{}, map[int]int{}
	for i := 0; i < 4000; i++ {
		k, v := rng.IntN(200), rng.IntN(200)
		switch rng.IntN(4) {
		case 0:
			_, ok := m.Remove(k)
			if old, had := fwd[k]; had {
				delete(rev, old)
				delete(fwd, k)
				require.True(t, ok)
			} else {
				require.False(t, ok)
			}
		case 1:
			_, ok := m.Inverse().Remove(v)
			if old, had := rev[v]; had {
				delete(fwd, old)
				delete(rev, v)
				require.True(t, ok)
			} else {
				require.False(t, ok)
			}
		default:
			prev, replaced, err := m.Put(k, v)
			require.NoError(t, err)
			old, had := fwd[k]
			require.Equal(t, had, replaced)
			if had {
				require.Equal(t, old, prev)
				delete(rev, old)
			}
			if oldKey, had := rev[v]; had {
				delete(fwd, oldKey)
			}
			fwd[k], rev[v] = v, k
		}
		if i%100 == 0 {
			require.NoError(t, m.Verify())
		}
	}
	require.NoError(t, m.Verify())
	if diff := gocmp.Diff(fwd, maps.Collect(m.All())); diff != "" {
		t.Fatalf("forward mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(rev, maps.Collect(m.Inverse().All())); diff != "" {
		t.Fatalf("inverse mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, slices.Sorted(maps.Keys(fwd)), m.KeySet().Slice())
	require.Equal(t, slices.Sorted(maps.Keys(rev)), m.Inverse().KeySet().Slice())
}
