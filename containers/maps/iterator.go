package maps

import (
	"iter"

	"github.com/odysseythink/bimap/containers"
)

// Assert Iterator implementation
var _ containers.IteratorWithKey[int, string] = (*Iterator[int, string])(nil)

// Iterator is a stateful iterator over a snapshot of a bimap's entries, taken when the iterator is created.
type Iterator[K, V any] struct {
	entries []Pair[K, V]
	index   int
}

// NewIterator returns a stateful iterator over the entries of seq.
func NewIterator[K, V any](seq iter.Seq2[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{index: -1}
	for key, value := range seq {
		it.entries = append(it.entries, PairOf(key, value))
	}
	return it
}

// Next moves the iterator to the next element and returns true if there was a next element in the container.
// If Next() returns true, then next element's key and value can be retrieved by Key() and Value().
// If Next() was called for the first time, then it will point the iterator to the first element if it exists.
// Modifies the state of the iterator.
func (it *Iterator[K, V]) Next() bool {
	if it.index < len(it.entries) {
		it.index++
	}
	return it.index < len(it.entries)
}

// Value returns the current element's value.
// Does not modify the state of the iterator.
func (it *Iterator[K, V]) Value() V {
	return it.entries[it.index].Value
}

// Key returns the current element's key.
// Does not modify the state of the iterator.
func (it *Iterator[K, V]) Key() K {
	return it.entries[it.index].Key
}

// Begin resets the iterator to its initial state (one-before-first)
// Call Next() to fetch the first element if any.
func (it *Iterator[K, V]) Begin() {
	it.index = -1
}

// First moves the iterator to the first element and returns true if there was a first element in the container.
// If First() returns true, then first element's key and value can be retrieved by Key() and Value().
// Modifies the state of the iterator.
func (it *Iterator[K, V]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo moves the iterator to the next element from current position that satisfies the condition given by the
// passed function, and returns true if there was a next element in the container.
// If NextTo() returns true, then next element's key and value can be retrieved by Key() and Value().
// Modifies the state of the iterator.
func (it *Iterator[K, V]) NextTo(f func(key K, value V) bool) bool {
	for it.Next() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}
	return false
}
