package godsbimap

import (
	godsmaps "github.com/emirpasic/gods/maps"

	"github.com/odysseythink/bimap/containers/maps"
)

// Assert BidiMap implementation
var _ godsmaps.BidiMap = (*BidiMap[int, string])(nil)

// BidiMap views a maps.MutableBiMap as a gods BidiMap.
type BidiMap[K, V comparable] struct {
	delegate maps.MutableBiMap[K, V]
	inverse  *BidiMap[V, K]
}

func newBidiMap[K, V comparable](delegate maps.MutableBiMap[K, V]) *BidiMap[K, V] {
	b := &BidiMap[K, V]{delegate: delegate}
	b.inverse = &BidiMap[V, K]{delegate: delegate.Inverse(), inverse: b}
	return b
}

// Put inserts element into the map. Like gods' own bidimaps it displaces any entry bound to value.
// It panics with maps.ErrNullReference if key or value is nil.
func (b *BidiMap[K, V]) Put(key interface{}, value interface{}) {
	b.delegate.ForcePut(cast[K](key), cast[V](value))
}

// Get searches the element in the map by key and returns its value or nil if key is not found in map.
// Second return parameter is true if key was found, otherwise false.
func (b *BidiMap[K, V]) Get(key interface{}) (value interface{}, found bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	v, found := b.delegate.Get(k)
	if !found {
		return nil, false
	}
	return v, true
}

// GetKey searches the element in the map by value and returns its key or nil if value is not found in map.
// Second return parameter is true if value was found, otherwise false.
func (b *BidiMap[K, V]) GetKey(value interface{}) (key interface{}, found bool) {
	v, ok := value.(V)
	if !ok {
		return nil, false
	}
	k, found := b.delegate.GetKey(v)
	if !found {
		return nil, false
	}
	return k, true
}

// Remove removes the element from the map by key.
func (b *BidiMap[K, V]) Remove(key interface{}) {
	if k, ok := key.(K); ok {
		b.delegate.Remove(k)
	}
}

// Keys returns all keys in the order of the wrapped bimap.
func (b *BidiMap[K, V]) Keys() []interface{} {
	keys := make([]interface{}, 0, b.delegate.Size())
	for key := range b.delegate.Keys() {
		keys = append(keys, key)
	}
	return keys
}

// Values returns all values in the order of the wrapped bimap's inverse.
func (b *BidiMap[K, V]) Values() []interface{} {
	return b.inverse.Keys()
}

// Empty returns true if map does not contain any elements
func (b *BidiMap[K, V]) Empty() bool {
	return b.delegate.Empty()
}

// Size returns number of elements in the map.
func (b *BidiMap[K, V]) Size() int {
	return b.delegate.Size()
}

// Clear removes all elements from the map.
func (b *BidiMap[K, V]) Clear() {
	b.delegate.Clear()
}

// String returns a string representation of container
func (b *BidiMap[K, V]) String() string {
	return maps.String[K, V]("GodsBidiMap", b.delegate)
}

// Inverse returns the view mapping values back to keys. Inverse().Inverse() returns b.
func (b *BidiMap[K, V]) Inverse() *BidiMap[V, K] {
	return b.inverse
}

// Equal reports whether other holds the same entries as b.
func (b *BidiMap[K, V]) Equal(other godsmaps.BidiMap) bool {
	if other.Size() != b.Size() {
		return false
	}
	for key, value := range b.delegate.Entries() {
		v, found := other.Get(key)
		if !found || v != interface{}(value) {
			return false
		}
	}
	return true
}

// Hash is the hash of the wrapped bimap.
func (b *BidiMap[K, V]) Hash() uint64 {
	return b.delegate.Hash()
}
