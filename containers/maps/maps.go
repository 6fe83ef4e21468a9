// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maps provides the bidirectional map contracts of this module.
//
// A bimap (or "bidirectional map") is a map that preserves the uniqueness of its values as well as that of its keys.
// This constraint enables bimaps to support an "inverse view", which is another bimap containing the same entries
// as this bimap but with reversed keys and values. A bimap and its inverse are backed by the same data.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package maps

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/odysseythink/bimap/containers"
)

// Pair is a single key/value association.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairOf returns the pair (key, value).
func PairOf[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Reader is the read capability set that all bimaps implement.
type Reader[K, V comparable] interface {
	// Get returns the value bound to key.
	Get(key K) (value V, found bool)
	// GetKey returns the key bound to value.
	GetKey(value V) (key K, found bool)
	ContainsKey(key K) bool
	// ContainsValue is a key lookup on the inverse, not a scan.
	ContainsValue(value V) bool

	// Keys, Values and Entries are live views over the bimap.
	// Values ranges over the keys of the inverse, so its order follows the inverse.
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq2[K, V]

	// KeySet and ValueSet return snapshots of the keys and values.
	KeySet() mapset.Set[K]
	ValueSet() mapset.Set[V]
	ToMap() map[K]V

	// Equal reports whether both bimaps hold the same entries, ignoring order.
	Equal(other Reader[K, V]) bool
	// Hash is consistent with Equal across all implementations.
	Hash() uint64

	containers.Container
	// Empty() bool
	// Size() int
	// String() string
}

// BiMap is a read-only bimap.
type BiMap[K, V comparable] interface {
	Reader[K, V]

	// Inverse returns the view mapping values back to keys.
	// Inverse().Inverse() returns the same object.
	Inverse() BiMap[V, K]
}

// MutableBiMap is a bimap that can be modified in place. Every modification is visible through the inverse.
type MutableBiMap[K, V comparable] interface {
	Reader[K, V]

	// Put binds key to value and returns the value previously bound to key.
	// If value is already bound to a different key, Put returns an error wrapping ErrAlreadyBound
	// and leaves the bimap unmodified.
	Put(key K, value V) (previous V, found bool, err error)

	// ForcePut binds key to value, silently removing the entry of any other key bound to value.
	// The size of the bimap may grow by one, stay the same or shrink by one.
	ForcePut(key K, value V) (previous V, found bool)

	// Remove removes key and returns the value it was bound to.
	Remove(key K) (value V, found bool)

	// RemoveEntry removes key only if it is currently bound to value.
	RemoveEntry(key K, value V) bool

	// PutAll applies Put to every pair in order and stops at the first error.
	// Pairs applied before the failing one stay in place.
	PutAll(pairs ...Pair[K, V]) error

	// PutSeq is PutAll for a sequence of key/value pairs.
	PutSeq(seq iter.Seq2[K, V]) error

	Clear()

	// Inverse returns the live inverse view sharing this bimap's storage.
	// Inverse().Inverse() returns the same object.
	Inverse() MutableBiMap[V, K]
}

// Pairs returns a sequence over pairs.
func Pairs[K, V any](pairs ...Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
