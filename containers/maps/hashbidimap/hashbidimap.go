// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashbidimap implements a mutable bidirectional map backed by two insertion-ordered hash maps.
//
// Every key is bound to exactly one value and every value to exactly one key, so a value can be looked up by key
// and a key by value, both in constant time.
//
// Elements are iterated in insertion order. A key whose value is replaced keeps its position. Ranging over Keys,
// Values or Entries while modifying the map is allowed: removed entries not reached yet are skipped and entries
// added during ranging are reached.
//
// The map and its inverse are two views over the same pair of ordered maps, so every change made through one is
// visible through the other.
//
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package hashbidimap

import (
	"fmt"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odysseythink/bimap/containers/maps"
)

// Assert Map implementation
var _ maps.MutableBiMap[int, string] = (*Map[int, string])(nil)

// Map holds the elements in two ordered maps, one per direction.
// The zero value is not usable; create maps with New or the other constructors of this package.
type Map[K, V comparable] struct {
	forwardMap *orderedMap[K, V]
	inverseMap *orderedMap[V, K]
	inverse    *Map[V, K]
}

// New instantiates an empty bidirectional map.
func New[K, V comparable]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init(0)
	return m
}

// Of instantiates a bidirectional map holding pairs, put in order.
// A repeated key takes the later value; a value repeated under different keys is an error wrapping maps.ErrAlreadyBound.
func Of[K, V comparable](pairs ...maps.Pair[K, V]) (*Map[K, V], error) {
	m := &Map[K, V]{}
	m.init(len(pairs))
	if err := m.PutAll(pairs...); err != nil {
		return nil, err
	}
	return m, nil
}

// FromSeq instantiates a bidirectional map holding the pairs of seq, put in order.
func FromSeq[K, V comparable](seq iter.Seq2[K, V]) (*Map[K, V], error) {
	m := New[K, V]()
	if err := m.PutSeq(seq); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap instantiates a bidirectional map holding the entries of from.
func FromMap[K, V comparable](from map[K]V) (*Map[K, V], error) {
	m := &Map[K, V]{}
	m.init(len(from))
	for key, value := range from {
		if _, _, err := m.Put(key, value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// init allocates the shared storage and links m with its inverse view.
func (m *Map[K, V]) init(capacity int) {
	m.forwardMap = newOrderedMap[K, V](capacity)
	m.inverseMap = newOrderedMap[V, K](capacity)
	m.inverse = &Map[V, K]{
		forwardMap: m.inverseMap,
		inverseMap: m.forwardMap,
		inverse:    m,
	}
}

// Put inserts element into the map.
// It fails with maps.ErrAlreadyBound, leaving the map untouched, if value is bound to another key.
func (m *Map[K, V]) Put(key K, value V) (previous V, found bool, err error) {
	if boundKey, bound := m.inverseMap.Get(value); bound && boundKey != key {
		return previous, false, fmt.Errorf("%w: value %v is bound to key %v", maps.ErrAlreadyBound, value, boundKey)
	}
	previous, found = m.ForcePut(key, value)
	return previous, found, nil
}

// ForcePut inserts element into the map, removing the entry of any other key bound to value.
// The key of such an entry is discarded.
func (m *Map[K, V]) ForcePut(key K, value V) (previous V, found bool) {
	previous, found = m.forwardMap.Get(key)
	if found && previous == value {
		return previous, true
	}
	if boundKey, bound := m.inverseMap.Delete(value); bound {
		m.forwardMap.Delete(boundKey)
	}
	if found {
		m.inverseMap.Delete(previous)
	}
	m.forwardMap.Set(key, value)
	m.inverseMap.Set(value, key)
	return previous, found
}

// PutAll inserts the pairs in order, stopping at the first value bound to another key.
func (m *Map[K, V]) PutAll(pairs ...maps.Pair[K, V]) error {
	return maps.PutAll[K, V](m, maps.Pairs(pairs...))
}

// PutSeq inserts the pairs of seq in order, stopping at the first value bound to another key.
func (m *Map[K, V]) PutSeq(seq iter.Seq2[K, V]) error {
	return maps.PutAll[K, V](m, seq)
}

// Get searches the element in the map by key and returns its value or zero value if key is not found in map.
// Second return parameter is true if key was found, otherwise false.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	return m.forwardMap.Get(key)
}

// GetKey searches the element in the map by value and returns its key or zero value if value is not found in map.
// Second return parameter is true if value was found, otherwise false.
func (m *Map[K, V]) GetKey(value V) (key K, found bool) {
	return m.inverseMap.Get(value)
}

// ContainsKey reports whether key is bound.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.forwardMap.Get(key)
	return found
}

// ContainsValue reports whether value is bound.
func (m *Map[K, V]) ContainsValue(value V) bool {
	_, found := m.inverseMap.Get(value)
	return found
}

// Remove removes the element from the map by key.
func (m *Map[K, V]) Remove(key K) (value V, found bool) {
	if value, found = m.forwardMap.Delete(key); found {
		m.inverseMap.Delete(value)
	}
	return value, found
}

// RemoveEntry removes the element from the map only if key is bound to value.
func (m *Map[K, V]) RemoveEntry(key K, value V) bool {
	return maps.RemoveEntry[K, V](m, key, value)
}

// Empty returns true if map does not contain any elements
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Size returns number of elements in the map.
func (m *Map[K, V]) Size() int {
	return m.forwardMap.Len()
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.Entries() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns the values in the order they were bound, which is the key order of the inverse.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return m.inverse.Keys()
}

// Entries returns the elements in insertion order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.forwardMap.pairs(func(pair *orderedmap.Pair[K, V]) bool {
			return yield(pair.Key, pair.Value)
		})
	}
}

// KeySet returns a snapshot of the keys.
func (m *Map[K, V]) KeySet() mapset.Set[K] {
	return maps.SetOf(m.Keys())
}

// ValueSet returns a snapshot of the values.
func (m *Map[K, V]) ValueSet() mapset.Set[V] {
	return maps.SetOf(m.Values())
}

// ToMap copies the elements into a plain map.
func (m *Map[K, V]) ToMap() map[K]V {
	return maps.ToMap[K, V](m)
}

// Iterator returns a stateful iterator over a snapshot of the elements.
func (m *Map[K, V]) Iterator() *maps.Iterator[K, V] {
	return maps.NewIterator(m.Entries())
}

// Clear removes all elements from the map and its inverse.
func (m *Map[K, V]) Clear() {
	m.forwardMap.clear()
	m.inverseMap.clear()
}

// Inverse returns the inverse view, backed by the same storage.
func (m *Map[K, V]) Inverse() maps.MutableBiMap[V, K] {
	return m.inverse
}

// Equal reports whether other holds the same elements.
func (m *Map[K, V]) Equal(other maps.Reader[K, V]) bool {
	return maps.Equal[K, V](m, other)
}

// Hash returns the order independent hash of the elements.
func (m *Map[K, V]) Hash() uint64 {
	return maps.Hash[K, V](m)
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	return maps.String[K, V]("HashBiMap", m)
}
