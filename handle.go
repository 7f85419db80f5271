// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

// Handle is a single-owner wrapper around a native resource value
// and the function that releases it. At most one live Handle owns a
// given resource; ownership moves with TransferFrom and is never
// duplicated. The zero Handle of a pointer type is usable as-is; for
// other types use NewHandle to fix the invalid sentinel.
//
// Handles must not be copied by value: both copies would believe
// they own the resource.
type Handle[T comparable] struct {
	value   T
	invalid T
	release func(T)
}

// NewHandle returns an empty Handle whose invalid sentinel is the
// given value.
func NewHandle[T comparable](invalid T) Handle[T] {
	return Handle[T]{value: invalid, invalid: invalid}
}

// Acquire releases any currently-owned resource, then takes
// ownership of value, to be released with release.
func (h *Handle[T]) Acquire(value T, release func(T)) {
	h.Release()
	h.value = value
	h.release = release
}

// Get returns the owned value without transferring ownership.
func (h *Handle[T]) Get() T {
	return h.value
}

// Valid reports whether the handle currently owns a resource.
func (h *Handle[T]) Valid() bool {
	return h.value != h.invalid
}

// Release invokes the release function if the handle owns a
// resource, then resets to the sentinel. A value acquired with a nil
// release function is dropped without a callback. It reports whether
// a resource was given up; releasing an empty handle is a no-op.
func (h *Handle[T]) Release() bool {
	if h.value == h.invalid {
		return false
	}
	if h.release != nil {
		h.release(h.value)
	}
	h.reset()
	return true
}

// TransferFrom moves ownership out of other into h, releasing
// whatever h owned before. After the transfer other is empty.
// Transferring a handle into itself is a no-op.
func (h *Handle[T]) TransferFrom(other *Handle[T]) {
	if h == other {
		return
	}
	h.Release()
	h.value = other.value
	h.release = other.release
	other.reset()
}

func (h *Handle[T]) reset() {
	h.value = h.invalid
	h.release = nil
}
