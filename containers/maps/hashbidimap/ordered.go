package hashbidimap

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// orderedMap is one direction of the storage. A map and its inverse view share both directions, so cursors
// registered here see deletions made through either view.
type orderedMap[K comparable, V any] struct {
	*orderedmap.OrderedMap[K, V]
	cursors map[*cursor[K, V]]struct{}
}

// cursor marks the last pair yielded by a ranging loop. at is always a stored pair, or nil when ranging should
// resume from the oldest pair.
type cursor[K comparable, V any] struct {
	at *orderedmap.Pair[K, V]
}

func newOrderedMap[K comparable, V any](capacity int) *orderedMap[K, V] {
	return &orderedMap[K, V]{
		OrderedMap: orderedmap.New[K, V](orderedmap.WithCapacity[K, V](capacity)),
	}
}

// Delete removes key, moving back any cursor that sits on its pair.
func (om *orderedMap[K, V]) Delete(key K) (V, bool) {
	if len(om.cursors) > 0 {
		if pair := om.GetPair(key); pair != nil {
			for c := range om.cursors {
				if c.at == pair {
					c.at = pair.Prev()
				}
			}
		}
	}
	return om.OrderedMap.Delete(key)
}

// clear deletes every pair in place.
func (om *orderedMap[K, V]) clear() {
	for pair := om.Oldest(); pair != nil; {
		next := pair.Next()
		om.Delete(pair.Key)
		pair = next
	}
}

// pairs ranges over the stored pairs in order. The loop body may add or remove any entry: removed pairs that
// were not reached yet are skipped and pairs added behind the current one are reached.
func (om *orderedMap[K, V]) pairs(yield func(*orderedmap.Pair[K, V]) bool) {
	c := &cursor[K, V]{}
	if om.cursors == nil {
		om.cursors = make(map[*cursor[K, V]]struct{})
	}
	om.cursors[c] = struct{}{}
	defer delete(om.cursors, c)

	for pair := om.Oldest(); pair != nil; pair = om.after(c) {
		c.at = pair
		if !yield(pair) {
			return
		}
	}
}

func (om *orderedMap[K, V]) after(c *cursor[K, V]) *orderedmap.Pair[K, V] {
	if c.at == nil {
		return om.Oldest()
	}
	return c.at.Next()
}
