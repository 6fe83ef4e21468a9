package godsbimap

import (
	"fmt"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
	godsmaps "github.com/emirpasic/gods/maps"

	"github.com/odysseythink/bimap/containers/maps"
)

// Assert Wrapper implementation
var _ maps.MutableBiMap[int, string] = (*Wrapper[int, string])(nil)

// Wrapper views a gods BidiMap as a maps.MutableBiMap. It owns no data: every call goes to the gods map.
//
// The gods map has no inverse of its own, so the inverse of a Wrapper is another Wrapper over the same gods map
// that reads it from values to keys.
type Wrapper[K, V comparable] struct {
	delegate godsmaps.BidiMap
	inverted bool
	inverse  *Wrapper[V, K]
}

func wrap[K, V comparable](delegate godsmaps.BidiMap) *Wrapper[K, V] {
	w := &Wrapper[K, V]{delegate: delegate}
	w.inverse = &Wrapper[V, K]{delegate: delegate, inverted: true, inverse: w}
	return w
}

func (w *Wrapper[K, V]) lookup(key K) (interface{}, bool) {
	if w.inverted {
		return w.delegate.GetKey(key)
	}
	return w.delegate.Get(key)
}

func (w *Wrapper[K, V]) reverseLookup(value V) (interface{}, bool) {
	if w.inverted {
		return w.delegate.Get(value)
	}
	return w.delegate.GetKey(value)
}

// store relies on gods' Put displacing both conflicting entries.
func (w *Wrapper[K, V]) store(key K, value V) {
	if w.inverted {
		w.delegate.Put(value, key)
		return
	}
	w.delegate.Put(key, value)
}

func (w *Wrapper[K, V]) rawKeys() []interface{} {
	if w.inverted {
		return w.delegate.Values()
	}
	return w.delegate.Keys()
}

// Get returns the value bound to key.
// It panics with maps.ErrNullReference if the gods map binds key to nil.
func (w *Wrapper[K, V]) Get(key K) (value V, found bool) {
	raw, found := w.lookup(key)
	if !found {
		return value, false
	}
	return cast[V](raw), true
}

// GetKey returns the key bound to value.
func (w *Wrapper[K, V]) GetKey(value V) (key K, found bool) {
	raw, found := w.reverseLookup(value)
	if !found {
		return key, false
	}
	return cast[K](raw), true
}

func (w *Wrapper[K, V]) ContainsKey(key K) bool {
	_, found := w.lookup(key)
	return found
}

func (w *Wrapper[K, V]) ContainsValue(value V) bool {
	_, found := w.reverseLookup(value)
	return found
}

// Put binds key to value, failing with maps.ErrAlreadyBound if value is bound to another key.
func (w *Wrapper[K, V]) Put(key K, value V) (previous V, found bool, err error) {
	if boundKey, bound := w.GetKey(value); bound && boundKey != key {
		return previous, false, fmt.Errorf("%w: value %v is bound to key %v", maps.ErrAlreadyBound, value, boundKey)
	}
	previous, found = w.ForcePut(key, value)
	return previous, found, nil
}

// ForcePut binds key to value through gods' Put.
func (w *Wrapper[K, V]) ForcePut(key K, value V) (previous V, found bool) {
	previous, found = w.Get(key)
	w.store(key, value)
	return previous, found
}

func (w *Wrapper[K, V]) Remove(key K) (value V, found bool) {
	value, found = w.Get(key)
	if !found {
		return value, false
	}
	if w.inverted {
		w.delegate.Remove(value)
	} else {
		w.delegate.Remove(key)
	}
	return value, true
}

func (w *Wrapper[K, V]) RemoveEntry(key K, value V) bool {
	return maps.RemoveEntry[K, V](w, key, value)
}

func (w *Wrapper[K, V]) PutAll(pairs ...maps.Pair[K, V]) error {
	return maps.PutAll[K, V](w, maps.Pairs(pairs...))
}

func (w *Wrapper[K, V]) PutSeq(seq iter.Seq2[K, V]) error {
	return maps.PutAll[K, V](w, seq)
}

func (w *Wrapper[K, V]) Clear() {
	w.delegate.Clear()
}

// Keys ranges over the keys the gods map holds when ranging starts, skipping those removed since.
func (w *Wrapper[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, raw := range w.rawKeys() {
			key := cast[K](raw)
			if !w.ContainsKey(key) {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}

func (w *Wrapper[K, V]) Values() iter.Seq[V] {
	return w.inverse.Keys()
}

func (w *Wrapper[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range w.Keys() {
			value, found := w.Get(key)
			if !found {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}

func (w *Wrapper[K, V]) KeySet() mapset.Set[K] {
	return maps.SetOf(w.Keys())
}

func (w *Wrapper[K, V]) ValueSet() mapset.Set[V] {
	return maps.SetOf(w.Values())
}

func (w *Wrapper[K, V]) ToMap() map[K]V {
	return maps.ToMap[K, V](w)
}

func (w *Wrapper[K, V]) Empty() bool {
	return w.delegate.Empty()
}

func (w *Wrapper[K, V]) Size() int {
	return w.delegate.Size()
}

// Inverse returns the Wrapper reading the same gods map from values to keys.
func (w *Wrapper[K, V]) Inverse() maps.MutableBiMap[V, K] {
	return w.inverse
}

func (w *Wrapper[K, V]) Equal(other maps.Reader[K, V]) bool {
	return maps.Equal[K, V](w, other)
}

func (w *Wrapper[K, V]) Hash() uint64 {
	return maps.Hash[K, V](w)
}

func (w *Wrapper[K, V]) String() string {
	return maps.String[K, V]("GodsBiMap", w)
}
