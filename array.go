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

package commons

import "errors"

// defaultCapacity is the storage allocated by NewArray when no WithCapacity
// option is given.
const defaultCapacity = 32

// ErrIndexOutOfBounds is returned by Replace when the index does not refer to
// an active element.
var ErrIndexOutOfBounds = errors.New("commons: index out of bounds")

// Array is a growable array of T backed by a single contiguous buffer. The
// buffer is reallocated to double its capacity when an append would fill it,
// so a pointer into the storage obtained before a mutating call must not be
// retained across it. An Array is NOT goroutine-safe.
//
// The zero value for an Array is not usable; construct one with NewArray.
type Array[T any] struct {
	// buf is the allocated storage. len(buf) == capacity at all times; only
	// the first length elements are meaningful.
	buf []T
	// The number of active elements.
	length int
	// The number of allocated slots. Monotonically non-decreasing until
	// Release. Push keeps length strictly below capacity so that there is
	// always at least one spare slot.
	capacity int
	// The allocator to use for the buffer.
	allocator Allocator[T]
}

// NewArray constructs a new Array with a default capacity of 32. Use
// WithCapacity to start from a different capacity and WithAllocator to manage
// the storage manually.
func NewArray[T any](options ...option[T]) *Array[T] {
	a := &Array[T]{
		capacity:  defaultCapacity,
		allocator: defaultAllocator[T]{},
	}
	for _, op := range options {
		op.apply(a)
	}
	a.buf = a.allocator.Alloc(a.capacity)
	return a
}

// Len returns the number of active elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.capacity
}

// At returns the element at index. The second return value is false if index
// is not in [0, Len()).
func (a *Array[T]) At(index int) (T, bool) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, false
	}
	return a.buf[index], true
}

// grow reallocates the buffer to double the current capacity plus extra,
// preserving the active elements and releasing the old storage to the
// allocator.
func (a *Array[T]) grow(extra int) {
	newCapacity := a.capacity*2 + extra
	if newCapacity <= a.capacity {
		newCapacity = a.capacity + 1
	}
	newBuf := a.allocator.Alloc(newCapacity)
	copy(newBuf, a.buf[:a.length])
	a.allocator.Free(a.buf)
	a.buf = newBuf
	a.capacity = newCapacity
}

// Push appends elem, growing the buffer first if the append would fill it.
// Amortized O(1).
func (a *Array[T]) Push(elem T) {
	if a.length+1 >= a.capacity {
		a.grow(0)
	}
	a.buf[a.length] = elem
	a.length++
}

// Pop removes and returns the last element. The second return value is false
// if the array is empty.
func (a *Array[T]) Pop() (T, bool) {
	// The emptiness check must come first: length-1 on an empty array must
	// never be computed.
	if a.length == 0 {
		var zero T
		return zero, false
	}
	a.length--
	return a.buf[a.length], true
}

// Remove removes and returns the element at index, shifting all later
// elements left by one position. O(n). The second return value is false if
// index is out of bounds, in which case the array is unchanged.
func (a *Array[T]) Remove(index int) (T, bool) {
	elem, ok := a.At(index)
	if !ok {
		return elem, false
	}
	copy(a.buf[index:a.length-1], a.buf[index+1:a.length])
	a.length--
	return elem, true
}

// Replace overwrites the element at index in place. It returns
// ErrIndexOutOfBounds if index is not in [0, Len()), leaving the array
// unchanged.
func (a *Array[T]) Replace(index int, elem T) error {
	if index < 0 || index >= a.length {
		return ErrIndexOutOfBounds
	}
	a.buf[index] = elem
	return nil
}

// Clone returns a deep copy of the array with the same length and capacity,
// backed by freshly allocated storage from the same allocator.
func (a *Array[T]) Clone() *Array[T] {
	clone := &Array[T]{
		buf:       a.allocator.Alloc(a.capacity),
		length:    a.length,
		capacity:  a.capacity,
		allocator: a.allocator,
	}
	copy(clone.buf, a.buf[:a.length])
	return clone
}

// Clear resets the length to zero, retaining the buffer and its capacity.
func (a *Array[T]) Clear() {
	a.length = 0
}

// Release returns the buffer to the allocator and zeroes the length and
// capacity. It is unnecessary when using the default allocator, which leaves
// reclamation to the GC, but is retained for parity with manually managed
// storage. Release is idempotent; any other use of the array after Release is
// invalid.
func (a *Array[T]) Release() {
	if a.buf != nil {
		a.allocator.Free(a.buf)
		a.buf = nil
	}
	a.length = 0
	a.capacity = 0
}
