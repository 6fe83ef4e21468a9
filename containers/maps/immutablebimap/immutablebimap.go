// Package immutablebimap implements a read-only bidirectional map.
//
// Entries are iterated in the order of the source they were built from. The inverse view is built once, together
// with the map, and shares its storage.
package immutablebimap

import (
	"encoding/json"
	"iter"
	"reflect"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odysseythink/bimap/containers"
	"github.com/odysseythink/bimap/containers/maps"
)

// Assert Map implementation
var _ maps.BiMap[int, string] = (*Map[int, string])(nil)
var _ containers.JSONSerializer = (*Map[int, string])(nil)

// empties holds the shared empty instance of every instantiated *Map type.
var empties sync.Map

// Map is a read-only bidirectional map. The zero value is not usable; build maps with the functions of this package.
type Map[K, V comparable] struct {
	forward  *orderedmap.OrderedMap[K, V]
	backward *orderedmap.OrderedMap[V, K]
	// nil for the shared empty instances, see Inverse.
	inverse *Map[V, K]
}

// Empty returns the shared empty bimap of type K to V. Its inverse is the shared empty bimap of type V to K.
func Empty[K, V comparable]() *Map[K, V] {
	key := reflect.TypeFor[*Map[K, V]]()
	if m, ok := empties.Load(key); ok {
		return m.(*Map[K, V])
	}
	m, _ := empties.LoadOrStore(key, &Map[K, V]{
		forward:  orderedmap.New[K, V](),
		backward: orderedmap.New[V, K](),
	})
	return m.(*Map[K, V])
}

// Single returns a bimap holding one entry.
func Single[K, V comparable](key K, value V) *Map[K, V] {
	return Of(maps.PairOf(key, value))
}

// Of returns a bimap holding pairs, in order. A later pair wins over an earlier one in both directions:
// a repeated key keeps its position and takes the later value, and the entry of an earlier key bound to a
// repeated value is dropped.
func Of[K, V comparable](pairs ...maps.Pair[K, V]) *Map[K, V] {
	return build(maps.Pairs(pairs...), len(pairs))
}

// FromSeq returns a bimap holding the pairs of seq, in order, with the same rules as Of.
func FromSeq[K, V comparable](seq iter.Seq2[K, V]) *Map[K, V] {
	return build(seq, 0)
}

// FromMap returns a bimap holding the entries of from, with the same rules as Of.
func FromMap[K, V comparable](from map[K]V) *Map[K, V] {
	return build(func(yield func(K, V) bool) {
		for key, value := range from {
			if !yield(key, value) {
				return
			}
		}
	}, len(from))
}

// FromBiMap returns a read-only snapshot of m.
func FromBiMap[K, V comparable](m maps.Reader[K, V]) *Map[K, V] {
	if im, ok := m.(*Map[K, V]); ok {
		return im
	}
	return build(m.Entries(), m.Size())
}

// FromJSON returns a bimap holding the entries of a JSON object, in document order.
func FromJSON[K, V comparable](data []byte) (*Map[K, V], error) {
	decoded := orderedmap.New[K, V]()
	if err := json.Unmarshal(data, decoded); err != nil {
		return nil, err
	}
	return build(func(yield func(K, V) bool) {
		for pair := decoded.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}, decoded.Len()), nil
}

func build[K, V comparable](seq iter.Seq2[K, V], capacity int) *Map[K, V] {
	forward := orderedmap.New[K, V](orderedmap.WithCapacity[K, V](capacity))
	backward := orderedmap.New[V, K](orderedmap.WithCapacity[V, K](capacity))
	for key, value := range seq {
		previous, found := forward.Get(key)
		if found && previous == value {
			continue
		}
		if boundKey, bound := backward.Delete(value); bound {
			forward.Delete(boundKey)
		}
		if found {
			backward.Delete(previous)
		}
		forward.Set(key, value)
		backward.Set(value, key)
	}
	if forward.Len() == 0 {
		return Empty[K, V]()
	}

	m := &Map[K, V]{forward: forward, backward: backward}
	m.inverse = &Map[V, K]{forward: backward, backward: forward, inverse: m}
	return m
}

// Get returns the value bound to key.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	return m.forward.Get(key)
}

// GetKey returns the key bound to value.
func (m *Map[K, V]) GetKey(value V) (key K, found bool) {
	return m.backward.Get(value)
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.forward.Get(key)
	return found
}

func (m *Map[K, V]) ContainsValue(value V) bool {
	_, found := m.backward.Get(value)
	return found
}

func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

func (m *Map[K, V]) Size() int {
	return m.forward.Len()
}

// Keys returns the keys in source order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := m.forward.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Values ranges over the keys of the inverse.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return m.Inverse().Keys()
}

// Entries returns the entries in source order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := m.forward.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) KeySet() mapset.Set[K] {
	return maps.SetOf(m.Keys())
}

func (m *Map[K, V]) ValueSet() mapset.Set[V] {
	return maps.SetOf(m.Values())
}

func (m *Map[K, V]) ToMap() map[K]V {
	return maps.ToMap[K, V](m)
}

// Iterator returns a stateful iterator over the entries.
func (m *Map[K, V]) Iterator() *maps.Iterator[K, V] {
	return maps.NewIterator(m.Entries())
}

// Inverse returns the bimap mapping values back to keys.
func (m *Map[K, V]) Inverse() maps.BiMap[V, K] {
	if m.inverse == nil {
		return Empty[V, K]()
	}
	return m.inverse
}

func (m *Map[K, V]) Equal(other maps.Reader[K, V]) bool {
	return maps.Equal[K, V](m, other)
}

func (m *Map[K, V]) Hash() uint64 {
	return maps.Hash[K, V](m)
}

func (m *Map[K, V]) String() string {
	return maps.String[K, V]("ImmutableBiMap", m)
}

// ToJSON outputs the JSON representation of the map, in entry order.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	return m.forward.MarshalJSON()
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}
