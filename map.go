// Copyright 2026 The Commons Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commons is a small foundational library of generic containers: a
// growable array (Array), a string buffer built on it (Buffer), and an
// open-addressing hash map also built on it (Map).
//
// The Map uses open addressing with linear probing: colliding keys are placed
// into subsequent slots of the same table rather than external chains. Growth
// is lazy, triggered only when an insert finds the table exactly full, and
// performs a full rehash into a table of capacity 2n+1. Deletion clears a
// slot's active flag in place; there is no distinct tombstone state, so a
// probe chain that ran through a deleted slot is severed until the next
// resize rehashes the table (see Map.Remove).
//
// The containers are purely in-process, single-owner data structures. None of
// them is goroutine-safe, and mutating operations may reallocate the backing
// storage, invalidating any previously obtained view into it.
package commons

// defaultMapCapacity is the initial table size used by NewMap. A prime
// reduces clustering under modulo-based probing.
const defaultMapCapacity = 97

// Entry is a single slot of a Map, holding a key and its value. An inactive
// entry covers both a slot that was never used and one whose key was removed.
type Entry[K any, V any] struct {
	Key    K
	Value  V
	active bool
}

// Map is an unordered map from keys to values with Insert, Get, Update,
// Remove, and All operations. Collisions are resolved by linear probing over
// the entry table, which is stored in an Array[Entry[K,V]] and addressed over
// its full capacity. Hashing and key equality are supplied by the caller at
// construction.
//
// A Map is NOT goroutine-safe.
type Map[K any, V any] struct {
	// entries is the slot table. Every allocated slot is addressable; the
	// Array's length is unused by the map, which tracks occupancy with
	// activeCount instead.
	entries *Array[Entry[K, V]]
	// The number of active entries. Never exceeds the table capacity.
	activeCount int
	// The hash function applied to keys of type K.
	hash func(K) uint64
	// Key equality. Must be consistent with hash: equal keys must hash equal.
	equal func(K, K) bool
}

// NewMap constructs a new Map with an initial capacity of 97 slots. The hash
// and equal functions are mandatory and must be mutually consistent: keys for
// which equal returns true must produce the same hash. Options are forwarded
// to the backing Array, so WithCapacity and WithAllocator apply.
func NewMap[K any, V any](
	hash func(K) uint64, equal func(K, K) bool, options ...option[Entry[K, V]],
) *Map[K, V] {
	if hash == nil || equal == nil {
		panic("commons: NewMap requires both a hash and an equality function")
	}
	options = append([]option[Entry[K, V]]{
		WithCapacity[Entry[K, V]](defaultMapCapacity),
	}, options...)
	return &Map[K, V]{
		entries: NewArray[Entry[K, V]](options...),
		hash:    hash,
		equal:   equal,
	}
}

// Len returns the number of active entries.
func (m *Map[K, V]) Len() int {
	return m.activeCount
}

// Cap returns the number of allocated slots.
func (m *Map[K, V]) Cap() int {
	return m.entries.capacity
}

// probe walks the probe sequence for key starting at hash(key) mod capacity.
// It returns the slot index of the active entry whose key matches, or false
// if the walk reaches an inactive slot or exhausts the table without a match.
// Probe length is bounded by the table capacity.
func (m *Map[K, V]) probe(key K) (int, bool) {
	capacity := m.entries.capacity
	index := int(m.hash(key) % uint64(capacity))
	for i := 0; i < capacity; i++ {
		e := &m.entries.buf[index]
		if !e.active {
			return 0, false
		}
		if m.equal(e.Key, key) {
			return index, true
		}
		index = (index + 1) % capacity
	}
	return 0, false
}

// resize allocates a table of capacity 2n+1, keeping it odd, and re-inserts
// every active entry against the new capacity. The full rehash also repairs
// any probe chains severed by earlier removals. The old storage is released.
func (m *Map[K, V]) resize() {
	old := m.entries
	m.entries = NewArray[Entry[K, V]](
		WithCapacity[Entry[K, V]](old.capacity*2+1),
		WithAllocator[Entry[K, V]](old.allocator),
	)
	m.activeCount = 0
	for i := 0; i < old.capacity; i++ {
		if e := old.buf[i]; e.active {
			m.Insert(e.Key, e.Value)
		}
	}
	old.Release()
}

// Insert adds a key and its value to the map. It returns false, leaving the
// map unchanged, if the key is already present. The table is resized first
// whenever the insert would find it exactly full; Insert is the only
// operation that grows the table.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if m.activeCount >= m.entries.capacity {
		m.resize()
	}
	capacity := m.entries.capacity
	index := int(m.hash(key) % uint64(capacity))
	for m.entries.buf[index].active {
		if m.equal(m.entries.buf[index].Key, key) {
			return false
		}
		index = (index + 1) % capacity
	}
	m.entries.buf[index] = Entry[K, V]{Key: key, Value: value, active: true}
	m.activeCount++
	return true
}

// Get returns the entry for key. The second return value is false if the key
// is not found.
func (m *Map[K, V]) Get(key K) (Entry[K, V], bool) {
	index, ok := m.probe(key)
	if !ok {
		return Entry[K, V]{}, false
	}
	return m.entries.buf[index], true
}

// Update overwrites the value of an existing key and returns true. It returns
// false, leaving the map unchanged, if the key is not found. Update never
// inserts.
func (m *Map[K, V]) Update(key K, value V) bool {
	index, ok := m.probe(key)
	if !ok {
		return false
	}
	m.entries.buf[index].Value = value
	return true
}

// Remove removes the key from the map, returning false if it is not found.
//
// Removal clears the slot's active flag in place without writing a tombstone.
// A key whose probe chain passed through the removed slot becomes unreachable
// to probes until the next resize rehashes the table, even though its entry
// is still stored and still counted; this matches the behavior callers of the
// original design depend on.
func (m *Map[K, V]) Remove(key K) bool {
	index, ok := m.probe(key)
	if !ok {
		return false
	}
	m.entries.buf[index].active = false
	m.activeCount--
	return true
}

// All calls yield for every active entry in the map in table order. If yield
// returns false, All stops iterating. It is invalid to mutate the map during
// iteration.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	for i := 0; i < m.entries.capacity; i++ {
		if e := m.entries.buf[i]; e.active {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clear removes all entries, retaining the table at its current capacity.
func (m *Map[K, V]) Clear() {
	clear(m.entries.buf)
	m.activeCount = 0
}

// Release returns the table to its allocator. Any use of the map after
// Release is invalid, though Release itself is idempotent.
func (m *Map[K, V]) Release() {
	m.entries.Release()
	m.activeCount = 0
}

// HashString hashes a string with the djb2 polynomial rolling hash, seed 5381
// and multiplier 33. It is the stock hash function for string-keyed maps and
// is consistent with EqualString.
func HashString(s string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint64(s[i])
	}
	return hash
}

// EqualString reports byte-wise string equality, the stock equality function
// for string-keyed maps.
func EqualString(a, b string) bool {
	return a == b
}

// EqualComparable adapts the language's == to the Map equality contract for
// any comparable key type.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}
