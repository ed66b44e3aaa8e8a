// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

import (
	"sync/atomic"
)

// Unique is an exclusively-owned handle: it holds the sole ownership of
// its value and may release it at most once. Subsequent attempts to
// release panic (Release) or return false (TryRelease).
//
// A nil *Unique is the empty handle and is the absent sentinel returned
// by failed checked conversions. Ownership moves through [CastUnique],
// [DynCastUnique] or [Unique.Release]; it is never duplicated — a
// conversion consumes the one owned slot and produces one owned slot.
type Unique[T any] struct {
	used atomic.Uintptr
	v    T
}

// NewUnique creates a handle owning v.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{v: v}
}

// Valid reports whether the handle still owns its value.
// Empty and spent handles are invalid.
func (u *Unique[T]) Valid() bool {
	return u != nil && u.used.Load() == 0
}

// Get returns the owned value without consuming the handle.
// Returns (zero, false) on an empty or spent handle.
func (u *Unique[T]) Get() (T, bool) {
	if !u.Valid() {
		var zero T
		return zero, false
	}
	return u.v, true
}

// Release consumes the handle and returns the owned value.
// Panics if the handle is empty or has already been released.
func (u *Unique[T]) Release() T {
	if u == nil {
		panic("rtti: release of empty unique handle")
	}
	if u.used.Add(1) != 1 {
		panic("rtti: unique handle released twice")
	}
	return u.v
}

// TryRelease attempts to consume the handle.
// Returns (value, true) on success, or (zero, false) if the handle is
// empty or already spent.
func (u *Unique[T]) TryRelease() (T, bool) {
	if u == nil {
		var zero T
		return zero, false
	}
	if u.used.Add(1) != 1 {
		var zero T
		return zero, false
	}
	return u.v, true
}

// Discard marks the handle as spent without releasing the value.
// This is useful for explicitly dropping ownership that will not be used.
func (u *Unique[T]) Discard() {
	if u != nil {
		u.used.Store(1)
	}
}
