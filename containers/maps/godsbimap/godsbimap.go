// Package godsbimap converts between maps.MutableBiMap and the BidiMap contract of github.com/emirpasic/gods.
//
// Conversions never copy: the returned object forwards every call to the converted one, so changes made through
// either are visible through both. Converting an adapter back returns the object it wraps.
//
// gods maps are untyped and accept nil keys and values. A nil crossing into a typed bimap panics with an error
// wrapping maps.ErrNullReference; an element of the wrong dynamic type panics with maps.ErrTypeMismatch.
package godsbimap

import (
	"fmt"
	"reflect"

	godsmaps "github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashbidimap"

	"github.com/odysseythink/bimap/containers/maps"
)

// New returns a gods hashbidimap holding pairs, viewed as a maps.MutableBiMap.
func New[K, V comparable](pairs ...maps.Pair[K, V]) (*Wrapper[K, V], error) {
	w := wrap[K, V](hashbidimap.New())
	if err := w.PutAll(pairs...); err != nil {
		return nil, err
	}
	return w, nil
}

// AsMutableBiMap views a gods BidiMap as a maps.MutableBiMap.
func AsMutableBiMap[K, V comparable](m godsmaps.BidiMap) maps.MutableBiMap[K, V] {
	if b, ok := m.(*BidiMap[K, V]); ok {
		return b.delegate
	}
	return wrap[K, V](m)
}

// AsGodsBiMap views a maps.MutableBiMap as a gods BidiMap.
func AsGodsBiMap[K, V comparable](m maps.MutableBiMap[K, V]) godsmaps.BidiMap {
	if w, ok := m.(*Wrapper[K, V]); ok && !w.inverted {
		return w.delegate
	}
	return newBidiMap(m)
}

// cast converts an element read from a gods map to its static type.
func cast[T any](x interface{}) T {
	if x == nil {
		panic(fmt.Errorf("%w: want %s", maps.ErrNullReference, reflect.TypeFor[T]()))
	}
	t, ok := x.(T)
	if !ok {
		panic(fmt.Errorf("%w: %T is not %s", maps.ErrTypeMismatch, x, reflect.TypeFor[T]()))
	}
	return t
}
