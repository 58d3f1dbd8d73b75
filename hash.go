package named

import (
	"hash/maphash"
	"iter"
	"maps"
)

// Hash returns the hash of the underlying value of t, as computed by
// maphash.Comparable with the given seed. Equal values (see Equal) have equal
// hashes under the same seed.
func Hash[U comparable, Tag CanHash](seed maphash.Seed, t Type[U, Tag]) uint64 {
	return maphash.Comparable(seed, t.value)
}

// Map is a hash map keyed by a Hashable strong type. Keys are hashed and
// compared through their underlying value, so the map agrees with Equal and Hash
// on which keys are the same.
//
// The zero Map is empty and ready to use. Like a built-in map, a Map is not safe
// for concurrent use.
type Map[U comparable, Tag CanHash, V any] struct {
	m map[U]V
}

// NewMap returns an empty Map with space for approximately size keys.
func NewMap[U comparable, Tag CanHash, V any](size int) *Map[U, Tag, V] {
	return &Map[U, Tag, V]{m: make(map[U]V, size)}
}

// Find looks up the given key. If the key cannot be found, Find indicates that
// by returning ok == false.
func (a *Map[U, Tag, V]) Find(k Type[U, Tag]) (v V, ok bool) {
	v, ok = a.m[k.value]
	return v, ok
}

// Store associates v with the given key, replacing any previous value.
func (a *Map[U, Tag, V]) Store(k Type[U, Tag], v V) {
	if a.m == nil {
		a.m = make(map[U]V)
	}
	a.m[k.value] = v
}

// Delete removes the given key; it is a no-op if the key is absent.
func (a *Map[U, Tag, V]) Delete(k Type[U, Tag]) {
	delete(a.m, k.value)
}

// Len returns the number of keys in the map.
func (a *Map[U, Tag, V]) Len() int { return len(a.m) }

// All returns an iterator over the entries of the map, in no particular order.
func (a *Map[U, Tag, V]) All() iter.Seq2[Type[U, Tag], V] {
	return func(yield func(Type[U, Tag], V) bool) {
		for k, v := range a.m {
			if !yield(Type[U, Tag]{value: k}, v) {
				return
			}
		}
	}
}

// Clone returns a copy of the map.
func (a *Map[U, Tag, V]) Clone() *Map[U, Tag, V] {
	return &Map[U, Tag, V]{m: maps.Clone(a.m)}
}
