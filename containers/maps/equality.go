package maps

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b contain the same set of entries. Iteration order is ignored.
// A key bound to the zero value is not equal to an absent key.
func Equal[K, V comparable](a, b Reader[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for key, value := range a.Entries() {
		other, found := b.Get(key)
		if !found || other != value {
			return false
		}
	}
	return true
}

// Hash returns the sum of the hashes of m's entries. It does not depend on iteration order,
// so bimaps that are Equal hash equally whatever their implementation.
func Hash[K, V comparable](m Reader[K, V]) uint64 {
	var sum uint64
	for key, value := range m.Entries() {
		sum += EntryHash(key, value)
	}
	return sum
}

// EntryHash hashes a single entry as the hash of its key xor the hash of its value.
func EntryHash[K, V any](key K, value V) uint64 {
	return hashOf(key) ^ hashOf(value)
}

func hashOf[T any](x T) uint64 {
	d := xxhash.New()
	// Go-syntax rendering keeps values of different types apart ("1" vs 1).
	_, _ = fmt.Fprintf(d, "%#v", x)
	return d.Sum64()
}
