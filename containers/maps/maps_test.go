package maps_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odysseythink/bimap/containers/maps"
	"github.com/odysseythink/bimap/containers/maps/hashbidimap"
	"github.com/odysseythink/bimap/containers/maps/immutablebimap"
)

func TestEqual(t *testing.T) {
	require := require.New(t)

	a := immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "b"))
	b := immutablebimap.Of(maps.PairOf(2, "b"), maps.PairOf(1, "a"))
	require.True(maps.Equal[int, string](a, b), "order is ignored")

	require.False(maps.Equal[int, string](a, immutablebimap.Single(1, "a")))
	require.False(maps.Equal[int, string](a, immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "c"))))
	require.False(maps.Equal[int, string](immutablebimap.Single(1, ""), immutablebimap.Single(2, "")))
	require.True(maps.Equal[int, string](immutablebimap.Empty[int, string](), hashbidimap.New[int, string]()))
}

func TestHash(t *testing.T) {
	require := require.New(t)

	a := immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "b"))
	b := immutablebimap.Of(maps.PairOf(2, "b"), maps.PairOf(1, "a"))
	require.Equal(maps.Hash[int, string](a), maps.Hash[int, string](b))
	require.Equal(maps.EntryHash(1, "a")+maps.EntryHash(2, "b"), maps.Hash[int, string](a))
	require.Zero(maps.Hash[int, string](immutablebimap.Empty[int, string]()))

	require.NotEqual(maps.EntryHash(1, "a"), maps.EntryHash(2, "a"))
	require.NotEqual(maps.EntryHash("1", 1), maps.EntryHash(1, 1), "typed renderings differ")
}

func TestString(t *testing.T) {
	m := immutablebimap.Of(maps.PairOf("x", 1), maps.PairOf("y", 2))
	require.Equal(t, "Name\nmap[x:1 y:2]", maps.String[string, int]("Name", m))
	require.Equal(t, "Name\nmap[]", maps.String[string, int]("Name", immutablebimap.Empty[string, int]()))
}

func TestPairs(t *testing.T) {
	var keys []int
	for key := range maps.Pairs(maps.PairOf(1, "a"), maps.PairOf(2, "b"), maps.PairOf(3, "c")) {
		keys = append(keys, key)
		if key == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, keys)
}

func TestSetOf(t *testing.T) {
	set := maps.SetOf(slices.Values([]string{"a", "b", "a"}))
	require.Equal(t, 2, set.Cardinality())
	require.True(t, set.Contains("a", "b"))
}

func TestPutAll(t *testing.T) {
	require := require.New(t)

	m := hashbidimap.New[int, string]()
	err := maps.PutAll[int, string](m, maps.Pairs(maps.PairOf(1, "a"), maps.PairOf(2, "a"), maps.PairOf(3, "c")))
	require.ErrorIs(err, maps.ErrAlreadyBound)
	require.Equal(map[int]string{1: "a"}, m.ToMap(), "pairs before the failing one stay applied")
}

func TestRemoveEntry(t *testing.T) {
	require := require.New(t)

	m, err := hashbidimap.Of(maps.PairOf(1, "a"))
	require.NoError(err)
	require.False(maps.RemoveEntry[int, string](m, 1, "b"))
	require.False(maps.RemoveEntry[int, string](m, 2, "a"))
	require.True(maps.RemoveEntry[int, string](m, 1, "a"))
	require.True(m.Empty())
}

func TestIterator(t *testing.T) {
	require := require.New(t)

	it := maps.NewIterator(maps.Pairs(maps.PairOf("a", 1), maps.PairOf("b", 2)))
	require.True(it.Next())
	require.Equal("a", it.Key())
	require.Equal(1, it.Value())
	require.True(it.Next())
	require.Equal("b", it.Key())
	require.False(it.Next())
	require.False(it.Next())

	it.Begin()
	require.True(it.NextTo(func(_ string, value int) bool { return value > 1 }))
	require.Equal("b", it.Key())

	empty := maps.NewIterator(maps.Pairs[string, int]())
	require.False(empty.First())
}

func TestIteratorSnapshot(t *testing.T) {
	require := require.New(t)

	m, err := hashbidimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "b"))
	require.NoError(err)
	it := m.Iterator()
	m.Clear()

	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal([]int{1, 2}, keys)
}
