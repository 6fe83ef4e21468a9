package maps

import (
	"fmt"
	"iter"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// SetOf collects seq into a new, non thread-safe set.
func SetOf[T comparable](seq iter.Seq[T]) mapset.Set[T] {
	set := mapset.NewThreadUnsafeSet[T]()
	for item := range seq {
		set.Add(item)
	}
	return set
}

// ToMap copies the entries of m into a plain map.
func ToMap[K, V comparable](m Reader[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	for key, value := range m.Entries() {
		out[key] = value
	}
	return out
}

// String renders m as its type name followed by its entries in iteration order.
func String[K, V comparable](name string, m Reader[K, V]) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("\nmap[")
	first := true
	for key, value := range m.Entries() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", key, value)
	}
	b.WriteByte(']')
	return b.String()
}

// PutAll applies m.Put to every pair of seq in order and returns the first error.
func PutAll[K, V comparable](m MutableBiMap[K, V], seq iter.Seq2[K, V]) error {
	for key, value := range seq {
		if _, _, err := m.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEntry removes key from m if it is bound to value.
func RemoveEntry[K, V comparable](m MutableBiMap[K, V], key K, value V) bool {
	if current, found := m.Get(key); !found || current != value {
		return false
	}
	m.Remove(key)
	return true
}
