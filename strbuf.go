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

// Buffer is a growable byte buffer backed by an Array[byte]. The storage
// always holds one NUL (0) sentinel immediately after the last logical byte;
// the sentinel is not counted in Len and the capacity always has room for it.
//
// A Buffer is NOT goroutine-safe.
type Buffer struct {
	buf *Array[byte]
}

// NewBuffer constructs a new empty Buffer. Options are forwarded to the
// backing Array.
func NewBuffer(options ...option[byte]) *Buffer {
	return &Buffer{buf: NewArray[byte](options...)}
}

// NewBufferFrom constructs a Buffer holding the contents of s.
func NewBufferFrom(s string) *Buffer {
	b := NewBuffer()
	b.PushString(s)
	return b
}

// Len returns the number of logical bytes, excluding the sentinel.
func (b *Buffer) Len() int {
	return b.buf.length
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return b.buf.capacity
}

// String returns the logical contents as a string.
func (b *Buffer) String() string {
	return string(b.buf.buf[:b.buf.length])
}

// PushByte appends c and re-establishes the trailing sentinel. Pushing the
// sentinel through the Array grows the storage when needed; it is then
// excluded from the logical length again.
func (b *Buffer) PushByte(c byte) {
	b.buf.Push(c)
	b.buf.Push(0)
	b.buf.length--
}

// PushString appends the bytes of s one at a time, growing as needed and
// leaving exactly one trailing sentinel.
func (b *Buffer) PushString(s string) {
	for i := 0; i < len(s); i++ {
		b.PushByte(s[i])
	}
}

// PushBuffer appends the logical contents of other.
func (b *Buffer) PushBuffer(other *Buffer) {
	for i := 0; i < other.buf.length; i++ {
		b.PushByte(other.buf.buf[i])
	}
}

// At returns the byte at index. The second return value is false if index is
// not in [0, Len()).
func (b *Buffer) At(index int) (byte, bool) {
	return b.buf.At(index)
}

// Pop removes and returns the last logical byte, moving the sentinel back
// over it. The second return value is false if the buffer is empty.
func (b *Buffer) Pop() (byte, bool) {
	c, ok := b.buf.Pop()
	if ok {
		b.buf.buf[b.buf.length] = 0
	}
	return c, ok
}

// Remove removes and returns the byte at index, shifting later bytes left and
// re-establishing the sentinel. The second return value is false if index is
// out of bounds, in which case the buffer is unchanged.
func (b *Buffer) Remove(index int) (byte, bool) {
	c, ok := b.buf.Remove(index)
	if ok {
		b.buf.buf[b.buf.length] = 0
	}
	return c, ok
}

// Replace overwrites the byte at index in place. It returns
// ErrIndexOutOfBounds if index is not in [0, Len()), leaving the buffer
// unchanged. The sentinel cannot be replaced.
func (b *Buffer) Replace(index int, c byte) error {
	return b.buf.Replace(index, c)
}

// IndexByte returns the index of the first occurrence of pattern. The second
// return value is false, with index 0, if pattern does not occur.
func (b *Buffer) IndexByte(pattern byte) (int, bool) {
	for i := 0; i < b.buf.length; i++ {
		if b.buf.buf[i] == pattern {
			return i, true
		}
	}
	return 0, false
}

// IndexString reports whether pattern occurs in the buffer, scanning once
// with a running match length. The second return value is false, with index
// 0, if pattern does not occur. The empty pattern always matches at 0.
//
// The reported start index is approximate: a mismatch records the current
// scan position (or 1 when it happens at the very first byte) rather than the
// position a later match actually starts at, and a partial match consumes its
// bytes, so an occurrence overlapping a failed partial match is not found.
func (b *Buffer) IndexString(pattern string) (int, bool) {
	head := 0
	index := 0

	if b.buf.length < len(pattern) {
		return 0, false
	}

	for i := 0; i < b.buf.length; i++ {
		if head == len(pattern) {
			return index, true
		}

		if b.buf.buf[i] == pattern[head] {
			head++
		} else {
			head = 0
			if i == 0 {
				index = 1
			} else {
				index = i
			}
		}
	}

	if head == len(pattern) {
		return index, true
	}
	return 0, false
}

// IndexBuffer is IndexString against the logical contents of pattern.
func (b *Buffer) IndexBuffer(pattern *Buffer) (int, bool) {
	return b.IndexString(pattern.String())
}

// EqualsString reports whether the logical contents equal comparate, checking
// lengths and then comparing byte-wise.
func (b *Buffer) EqualsString(comparate string) bool {
	if b.buf.length != len(comparate) {
		return false
	}
	for i := 0; i < len(comparate); i++ {
		if b.buf.buf[i] != comparate[i] {
			return false
		}
	}
	return true
}

// EqualsBuffer reports whether two buffers hold equal logical contents.
func (b *Buffer) EqualsBuffer(other *Buffer) bool {
	return b.EqualsString(other.String())
}

// ToLower folds ASCII uppercase letters to lowercase in place. Bytes outside
// A-Z are untouched; the fold is locale-independent.
func (b *Buffer) ToLower() {
	for i := 0; i < b.buf.length; i++ {
		if c := b.buf.buf[i]; c >= 'A' && c <= 'Z' {
			b.buf.buf[i] = c + ('a' - 'A')
		}
	}
}

// ToUpper folds ASCII lowercase letters to uppercase in place. Bytes outside
// a-z are untouched; the fold is locale-independent.
func (b *Buffer) ToUpper() {
	for i := 0; i < b.buf.length; i++ {
		if c := b.buf.buf[i]; c >= 'a' && c <= 'z' {
			b.buf.buf[i] = c - ('a' - 'A')
		}
	}
}

// Clone returns a deep copy with the same length and capacity and a freshly
// established sentinel.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{buf: b.buf.Clone()}
	if clone.buf.length+1 >= clone.buf.capacity {
		clone.buf.grow(0)
	}
	clone.buf.buf[clone.buf.length] = 0
	return clone
}

// Clear resets the logical length to zero, retaining the storage.
func (b *Buffer) Clear() {
	b.buf.Clear()
	if b.buf.capacity > 0 {
		b.buf.buf[0] = 0
	}
}

// Release returns the storage to its allocator. Any use of the buffer after
// Release is invalid, though Release itself is idempotent.
func (b *Buffer) Release() {
	b.buf.Release()
}
