// Package bimaptest provides behaviour suites that every bimap implementation must pass.
package bimaptest

import (
	"slices"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/odysseythink/bimap/containers/maps"
)

// Fixture describes the content of the bimaps a suite builds.
type Fixture[K, V comparable] struct {
	// Entries are the three entries of a freshly built bimap, in insertion order.
	Entries []maps.Pair[K, V]
	// Extra are three entries whose keys and values appear nowhere in Entries.
	Extra []maps.Pair[K, V]
}

// IntStrings is the fixture {1: "1", 2: "2", 3: "3"}.
var IntStrings = Fixture[int, string]{
	Entries: []maps.Pair[int, string]{{Key: 1, Value: "1"}, {Key: 2, Value: "2"}, {Key: 3, Value: "3"}},
	Extra:   []maps.Pair[int, string]{{Key: 4, Value: "4"}, {Key: 5, Value: "5"}, {Key: 6, Value: "6"}},
}

// StringInts is the fixture {"1": 1, "2": 2, "3": 3}. Its inverse holds the entries of IntStrings.
var StringInts = Fixture[string, int]{
	Entries: []maps.Pair[string, int]{{Key: "1", Value: 1}, {Key: "2", Value: 2}, {Key: "3", Value: 3}},
	Extra:   []maps.Pair[string, int]{{Key: "4", Value: 4}, {Key: "5", Value: 5}, {Key: "6", Value: 6}},
}

func (f Fixture[K, V]) keys() []K {
	keys := make([]K, 0, len(f.Entries))
	for _, e := range f.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func (f Fixture[K, V]) values() []V {
	values := make([]V, 0, len(f.Entries))
	for _, e := range f.Entries {
		values = append(values, e.Value)
	}
	return values
}

// RequireConsistent checks that m and inverse hold the same entries in reverse.
func RequireConsistent[K, V comparable](t *testing.T, m maps.Reader[K, V], inverse maps.Reader[V, K]) {
	t.Helper()
	require := require.New(t)

	require.Equal(m.Size(), inverse.Size())
	require.Equal(m.Empty(), inverse.Empty())
	for key, value := range m.Entries() {
		k, found := inverse.Get(value)
		require.True(found, "inverse should hold value %v", value)
		require.Equal(key, k)
	}
	for value, key := range inverse.Entries() {
		v, found := m.Get(key)
		require.True(found, "bimap should hold key %v", key)
		require.Equal(value, v)
	}
}

func requireContent[K, V comparable](t *testing.T, f Fixture[K, V], m maps.Reader[K, V]) {
	t.Helper()
	require := require.New(t)

	require.Equal(len(f.Entries), m.Size())
	require.False(m.Empty())
	for _, e := range f.Entries {
		value, found := m.Get(e.Key)
		require.True(found)
		require.Equal(e.Value, value)

		key, found := m.GetKey(e.Value)
		require.True(found)
		require.Equal(e.Key, key)

		require.True(m.ContainsKey(e.Key))
		require.True(m.ContainsValue(e.Value))
	}
	for _, e := range f.Extra {
		_, found := m.Get(e.Key)
		require.False(found)
		_, found = m.GetKey(e.Value)
		require.False(found)
		require.False(m.ContainsKey(e.Key))
		require.False(m.ContainsValue(e.Value))
	}

	require.ElementsMatch(f.keys(), slices.Collect(m.Keys()))
	require.ElementsMatch(f.values(), slices.Collect(m.Values()))
	require.True(mapset.NewThreadUnsafeSet(f.keys()...).Equal(m.KeySet()))
	require.True(mapset.NewThreadUnsafeSet(f.values()...).Equal(m.ValueSet()))

	expected := make(map[K]V, len(f.Entries))
	for _, e := range f.Entries {
		expected[e.Key] = e.Value
	}
	require.Equal(expected, m.ToMap())

	var entries []maps.Pair[K, V]
	for key, value := range m.Entries() {
		entries = append(entries, maps.PairOf(key, value))
	}
	require.ElementsMatch(f.Entries, entries)

	require.NotEmpty(m.String())
}

// RunBiMap runs the read-only bimap suite. build must return a new bimap holding f.Entries.
func RunBiMap[K, V comparable](t *testing.T, f Fixture[K, V], build func(t *testing.T) maps.BiMap[K, V]) {
	t.Run("content", func(t *testing.T) {
		requireContent(t, f, build(t))
	})

	t.Run("inverse", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		inverse := m.Inverse()
		RequireConsistent[K, V](t, m, inverse)
		require.Same(m, inverse.Inverse())
		require.Same(inverse, m.Inverse())

		for _, e := range f.Entries {
			value, _ := inverse.Inverse().Get(e.Key)
			key, found := inverse.Get(value)
			require.True(found)
			require.Equal(e.Key, key)
		}
	})

	t.Run("values follow the inverse", func(t *testing.T) {
		m := build(t)
		require.Equal(t, slices.Collect(m.Inverse().Keys()), slices.Collect(m.Values()))
	})

	t.Run("equal and hash", func(t *testing.T) {
		require := require.New(t)

		m, other := build(t), build(t)
		require.True(m.Equal(m))
		require.True(m.Equal(other))
		require.True(other.Equal(m))
		require.Equal(m.Hash(), other.Hash())
		require.True(m.Inverse().Equal(other.Inverse()))
		require.Equal(m.Inverse().Hash(), other.Inverse().Hash())
	})
}

// RunMutableBiMap runs the mutable bimap suite. build must return a new bimap holding f.Entries.
func RunMutableBiMap[K, V comparable](t *testing.T, f Fixture[K, V], build func(t *testing.T) maps.MutableBiMap[K, V]) {
	e1, e2, e3 := f.Entries[0], f.Entries[1], f.Entries[2]
	x1, x2, x3 := f.Extra[0], f.Extra[1], f.Extra[2]

	t.Run("content", func(t *testing.T) {
		requireContent(t, f, build(t))
	})

	t.Run("inverse twice is itself", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		require.Same(m, m.Inverse().Inverse())
		require.Same(m.Inverse(), m.Inverse().Inverse().Inverse())
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("inverse round trip", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		for _, e := range f.Entries {
			value, found := m.Inverse().Inverse().Get(e.Key)
			require.True(found)
			key, found := m.Inverse().Get(value)
			require.True(found)
			require.Equal(e.Key, key)
		}
	})

	t.Run("put unbound key and value", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		_, found, err := m.Put(x1.Key, x1.Value)
		require.NoError(err)
		require.False(found)

		require.Equal(4, m.Size())
		value, found := m.Get(x1.Key)
		require.True(found)
		require.Equal(x1.Value, value)
		require.True(m.ContainsValue(x1.Value))
		require.Equal(4, m.KeySet().Cardinality())
		require.Equal(4, m.ValueSet().Cardinality())
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("put existing key with unbound value", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		previous, found, err := m.Put(e3.Key, x1.Value)
		require.NoError(err)
		require.True(found)
		require.Equal(e3.Value, previous)

		value, _ := m.Get(e3.Key)
		require.Equal(x1.Value, value)
		require.False(m.ContainsValue(e3.Value))
		require.Equal(3, m.Size())
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("put value bound to another key", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		_, found, err := m.Put(x1.Key, e3.Value)
		require.ErrorIs(err, maps.ErrAlreadyBound)
		require.False(found)

		require.Equal(3, m.Size())
		require.False(m.ContainsKey(x1.Key))
		value, _ := m.Get(e3.Key)
		require.Equal(e3.Value, value)
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("put existing entry", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		previous, found, err := m.Put(e2.Key, e2.Value)
		require.NoError(err)
		require.True(found)
		require.Equal(e2.Value, previous)
		require.Equal(3, m.Size())
	})

	t.Run("force put value bound to another key", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		_, found := m.ForcePut(x1.Key, e3.Value)
		require.False(found)

		value, found := m.Get(x1.Key)
		require.True(found)
		require.Equal(e3.Value, value)
		require.False(m.ContainsKey(e3.Key))
		require.Equal(3, m.Size())
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("force put displacing two entries", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		previous, found := m.ForcePut(e1.Key, e2.Value)
		require.True(found)
		require.Equal(e1.Value, previous)

		require.Equal(2, m.Size())
		require.False(m.ContainsKey(e2.Key))
		require.False(m.ContainsValue(e1.Value))
		key, _ := m.GetKey(e2.Value)
		require.Equal(e1.Key, key)
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("force put existing entry", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		previous, found := m.ForcePut(e3.Key, e3.Value)
		require.True(found)
		require.Equal(e3.Value, previous)
		require.True(m.Equal(build(t)))
	})

	t.Run("force put is idempotent", func(t *testing.T) {
		require := require.New(t)

		once, twice := build(t), build(t)
		once.ForcePut(x1.Key, e2.Value)
		twice.ForcePut(x1.Key, e2.Value)
		twice.ForcePut(x1.Key, e2.Value)
		require.Equal(once.ToMap(), twice.ToMap())
		require.True(once.Equal(twice))
	})

	t.Run("put all", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		require.NoError(m.PutAll(f.Extra...))
		require.Equal(6, m.Size())
		for _, e := range f.Extra {
			value, _ := m.Get(e.Key)
			require.Equal(e.Value, value)
		}
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("put all stops at first bound value", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		err := m.PutAll(x1, maps.PairOf(x2.Key, e1.Value), x3)
		require.ErrorIs(err, maps.ErrAlreadyBound)

		require.True(m.ContainsKey(x1.Key))
		require.False(m.ContainsKey(x2.Key))
		require.False(m.ContainsKey(x3.Key))
		require.Equal(4, m.Size())
		RequireConsistent[K, V](t, m, m.Inverse())
	})

	t.Run("put seq", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		require.NoError(m.PutSeq(maps.Pairs(f.Extra...)))
		require.Equal(6, m.Size())
		require.ErrorIs(m.PutSeq(maps.Pairs(maps.PairOf(e1.Key, x1.Value))), maps.ErrAlreadyBound)
	})

	t.Run("remove existing key", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		value, found := m.Remove(e1.Key)
		require.True(found)
		require.Equal(e1.Value, value)
		require.False(m.ContainsKey(e1.Key))
		require.False(m.ContainsValue(e1.Value))
		require.Equal(2, m.Inverse().Size())
	})

	t.Run("remove unbound key", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		_, found := m.Remove(x1.Key)
		require.False(found)
		require.Equal(3, m.Size())
	})

	t.Run("remove entry", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		require.True(m.RemoveEntry(e2.Key, e2.Value))
		require.False(m.ContainsKey(e2.Key))
		require.False(m.ContainsValue(e2.Value))

		require.False(m.RemoveEntry(e3.Key, x1.Value))
		value, _ := m.Get(e3.Key)
		require.Equal(e3.Value, value)

		require.False(m.RemoveEntry(x1.Key, x1.Value))
		require.Equal(2, m.Size())
	})

	t.Run("remove ahead while ranging", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		var seen []K
		for key := range m.Keys() {
			seen = append(seen, key)
			if len(seen) > 1 {
				continue
			}
			for _, e := range f.Entries {
				if e.Key != key {
					m.Remove(e.Key)
					break
				}
			}
		}
		require.Len(seen, 2)
		require.ElementsMatch(slices.Collect(m.Keys()), seen)
	})

	t.Run("clear", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		m.Clear()
		require.True(m.Empty())
		require.Zero(m.Size())
		require.True(m.Inverse().Empty())
		require.Empty(slices.Collect(m.Values()))

		_, _, err := m.Put(x1.Key, e1.Value)
		require.NoError(err)
		require.Equal(1, m.Inverse().Size())
	})

	t.Run("changes through the inverse", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		inverse := m.Inverse()

		_, _, err := inverse.Put(x1.Value, x1.Key)
		require.NoError(err)
		value, _ := m.Get(x1.Key)
		require.Equal(x1.Value, value)

		inverse.Remove(e1.Value)
		require.False(m.ContainsKey(e1.Key))

		// e2.Value moves from e2.Key to e3.Key, dropping e3's entry.
		inverse.ForcePut(e2.Value, e3.Key)
		value, _ = m.Get(e3.Key)
		require.Equal(e2.Value, value)
		require.False(m.ContainsKey(e2.Key))
		require.False(m.ContainsValue(e3.Value))
		require.Equal(2, m.Size())

		_, _, err = inverse.Put(x1.Value, e3.Key)
		require.ErrorIs(err, maps.ErrAlreadyBound)
		RequireConsistent[K, V](t, m, inverse)
	})

	t.Run("changes through the bimap show in the inverse", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		inverse := m.Inverse()
		m.ForcePut(x1.Key, e1.Value)
		key, found := inverse.Get(e1.Value)
		require.True(found)
		require.Equal(x1.Key, key)
		require.False(inverse.ContainsValue(e1.Key))
	})

	t.Run("values are a live view", func(t *testing.T) {
		require := require.New(t)

		m := build(t)
		values := m.Values()
		_, _, err := m.Put(x1.Key, x1.Value)
		require.NoError(err)
		require.Contains(slices.Collect(values), x1.Value)
	})

	t.Run("equal and hash", func(t *testing.T) {
		require := require.New(t)

		m, other := build(t), build(t)
		require.True(m.Equal(other))
		require.Equal(m.Hash(), other.Hash())

		m.ForcePut(x1.Key, x1.Value)
		require.False(m.Equal(other))
		require.False(other.Equal(m))

		m.Remove(x1.Key)
		require.True(m.Equal(other))
		require.Equal(m.Hash(), other.Hash())
	})
}
