package immutablebimap_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odysseythink/bimap/containers/maps"
	"github.com/odysseythink/bimap/containers/maps/bimaptest"
	"github.com/odysseythink/bimap/containers/maps/hashbidimap"
	"github.com/odysseythink/bimap/containers/maps/immutablebimap"
)

func TestOfBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(*testing.T) maps.BiMap[int, string] {
		return immutablebimap.Of(bimaptest.IntStrings.Entries...)
	})
}

func TestFromSeqBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(*testing.T) maps.BiMap[int, string] {
		return immutablebimap.FromSeq(maps.Pairs(bimaptest.IntStrings.Entries...))
	})
}

func TestFromMapBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(*testing.T) maps.BiMap[int, string] {
		return immutablebimap.FromMap(map[int]string{1: "1", 2: "2", 3: "3"})
	})
}

func TestFromBiMapBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(t *testing.T) maps.BiMap[int, string] {
		m, err := hashbidimap.Of(bimaptest.IntStrings.Entries...)
		require.NoError(t, err)
		return immutablebimap.FromBiMap[int, string](m)
	})
}

func TestFromJSONBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(t *testing.T) maps.BiMap[int, string] {
		m, err := immutablebimap.FromJSON[int, string]([]byte(`{"1":"1","2":"2","3":"3"}`))
		require.NoError(t, err)
		return m
	})
}

func TestInverseBehaviour(t *testing.T) {
	bimaptest.RunBiMap(t, bimaptest.IntStrings, func(*testing.T) maps.BiMap[int, string] {
		return immutablebimap.Of(bimaptest.StringInts.Entries...).Inverse()
	})
}

func TestEmpty(t *testing.T) {
	require := require.New(t)

	empty := immutablebimap.Empty[int, string]()
	require.Same(empty, immutablebimap.Empty[int, string]())
	require.Same(empty, immutablebimap.Of[int, string]())
	require.Same(empty, immutablebimap.FromMap(map[int]string{}))
	require.Same(empty, immutablebimap.FromBiMap[int, string](hashbidimap.New[int, string]()))

	require.True(empty.Empty())
	require.Zero(empty.Size())
	require.Same(immutablebimap.Empty[string, int](), empty.Inverse())
	require.Same(empty, empty.Inverse().Inverse())
	require.Same(immutablebimap.Empty[int, int](), immutablebimap.Empty[int, int]().Inverse())

	_, found := empty.Get(0)
	require.False(found)
	require.False(empty.ContainsValue(""))
	require.Empty(slices.Collect(empty.Keys()))
	require.Empty(slices.Collect(empty.Values()))
	require.Zero(empty.KeySet().Cardinality())

	require.True(empty.Equal(hashbidimap.New[int, string]()))
	require.Zero(empty.Hash())
	require.Equal("ImmutableBiMap\nmap[]", empty.String())
}

func TestSingle(t *testing.T) {
	require := require.New(t)

	m := immutablebimap.Single("a", 1)
	require.Equal(1, m.Size())
	key, found := m.Inverse().Get(1)
	require.True(found)
	require.Equal("a", key)
	require.True(m.Equal(immutablebimap.Of(maps.PairOf("a", 1))))
}

func TestLaterPairWins(t *testing.T) {
	t.Run("repeated key", func(t *testing.T) {
		require := require.New(t)

		m := immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "b"), maps.PairOf(1, "c"))
		require.Equal(map[int]string{1: "c", 2: "b"}, m.ToMap())
		require.Equal([]int{1, 2}, slices.Collect(m.Keys()))
		require.False(m.ContainsValue("a"))
		require.Equal([]string{"b", "c"}, slices.Collect(m.Values()))
	})

	t.Run("repeated value", func(t *testing.T) {
		require := require.New(t)

		m := immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "a"))
		require.Equal(1, m.Size())
		key, _ := m.GetKey("a")
		require.Equal(2, key)
		require.False(m.ContainsKey(1))
	})

	t.Run("repeated key and value", func(t *testing.T) {
		m := immutablebimap.Of(maps.PairOf(1, "a"), maps.PairOf(2, "b"), maps.PairOf(1, "b"))
		require.Equal(t, map[int]string{1: "b"}, m.ToMap())
		require.Equal(t, map[string]int{"b": 1}, m.Inverse().ToMap())
	})
}

func TestSourceOrder(t *testing.T) {
	require := require.New(t)

	m := immutablebimap.Of(maps.PairOf(3, "c"), maps.PairOf(1, "a"), maps.PairOf(2, "b"))
	require.Equal([]int{3, 1, 2}, slices.Collect(m.Keys()))
	require.Equal([]string{"c", "a", "b"}, slices.Collect(m.Values()))
	require.Equal(slices.Collect(m.Values()), slices.Collect(m.Inverse().Keys()))
}

func TestRoundTrip(t *testing.T) {
	pairs := map[string]int{"one": 1, "two": 2, "three": 3}
	m := immutablebimap.FromMap(pairs)
	require.Equal(t, pairs, m.ToMap())
	for key, value := range pairs {
		found, _ := m.Inverse().Get(value)
		require.Equal(t, key, found)
	}
}

func TestFromBiMap(t *testing.T) {
	require := require.New(t)

	m := immutablebimap.Of(bimaptest.IntStrings.Entries...)
	require.Same(m, immutablebimap.FromBiMap[int, string](m))

	source, err := hashbidimap.Of(bimaptest.IntStrings.Entries...)
	require.NoError(err)
	snapshot := immutablebimap.FromBiMap[int, string](source)
	source.Clear()
	require.Equal(3, snapshot.Size(), "a snapshot does not follow its source")
}

func TestJSON(t *testing.T) {
	require := require.New(t)

	m, err := immutablebimap.FromJSON[string, int]([]byte(`{"b":2,"a":1}`))
	require.NoError(err)
	require.Equal([]string{"b", "a"}, slices.Collect(m.Keys()))

	data, err := json.Marshal(m)
	require.NoError(err)
	require.Equal(`{"b":2,"a":1}`, string(data))

	data, err = m.Inverse().(*immutablebimap.Map[int, string]).ToJSON()
	require.NoError(err)
	require.Equal(`{"2":"b","1":"a"}`, string(data))

	_, err = immutablebimap.FromJSON[string, int]([]byte(`{"a":"x"}`))
	require.Error(err)

	empty, err := immutablebimap.FromJSON[string, int]([]byte(`{}`))
	require.NoError(err)
	require.Same(immutablebimap.Empty[string, int](), empty)
}

func TestIterator(t *testing.T) {
	require := require.New(t)

	m := immutablebimap.Of(bimaptest.IntStrings.Entries...)
	it := m.Iterator()
	var values []string
	for it.Next() {
		values = append(values, it.Value())
	}
	require.Equal([]string{"1", "2", "3"}, values)

	require.True(it.First())
	require.Equal(1, it.Key())
}

func TestZeroValueIsNotAbsent(t *testing.T) {
	a := immutablebimap.Single(1, "")
	b := immutablebimap.Single(2, "")
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestString(t *testing.T) {
	m := immutablebimap.Of(maps.PairOf("b", 2), maps.PairOf("a", 1))
	require.Equal(t, "ImmutableBiMap\nmap[b:2 a:1]", m.String())
}
