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

// option provides an interface to do work on an Array while it is being
// created. NewBuffer and NewMap forward their options to the Array that backs
// them.
type option[T any] interface {
	apply(a *Array[T])
}

type capacityOption[T any] struct {
	capacity int
}

func (op capacityOption[T]) apply(a *Array[T]) {
	if op.capacity > 0 {
		a.capacity = op.capacity
	}
}

// WithCapacity is an option to specify the initial capacity of an Array[T].
// Non-positive capacities are ignored.
func WithCapacity[T any](capacity int) option[T] {
	return capacityOption[T]{capacity}
}

// Allocator specifies an interface for allocating and releasing the storage
// used by an Array. The default allocator utilizes Go's builtin make() and
// allows the GC to reclaim memory.
//
// If the allocator is manually managing memory and requires that buffers be
// freed then Release must be called in order to ensure Free is called.
type Allocator[T any] interface {
	// Alloc should return a slice equivalent to make([]T, n).
	Alloc(n int) []T

	// Free can optionally release the memory associated with the supplied
	// slice that is guaranteed to have been allocated by Alloc.
	Free(v []T)
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Alloc(n int) []T {
	return make([]T, n)
}

func (defaultAllocator[T]) Free(v []T) {
}

type allocatorOption[T any] struct {
	allocator Allocator[T]
}

func (op allocatorOption[T]) apply(a *Array[T]) {
	a.allocator = op.allocator
}

// WithAllocator is an option for specifying the Allocator to use for an
// Array[T].
func WithAllocator[T any](allocator Allocator[T]) option[T] {
	return allocatorOption[T]{allocator}
}
