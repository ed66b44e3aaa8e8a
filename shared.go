// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

import (
	"sync/atomic"
)

// Shared is a reference-counted handle permitting multiple simultaneous
// owners of the same value. Handles produced by [Shared.Clone],
// [CastShared] and [DynCastShared] alias the same value and the same
// counter; the count is observable through [Shared.Refs].
//
// The zero Shared is the empty handle and is the absent sentinel
// returned by failed checked conversions.
//
// The counter exists for ownership bookkeeping that outlives any single
// handle (caches, intrusive stores); the garbage collector keeps the
// value itself alive regardless. Releasing more owners than were ever
// created is a discipline violation, not a checked condition.
type Shared[T any] struct {
	v    T
	refs *atomic.Int64
}

// NewShared creates a handle owning v with a reference count of one.
func NewShared[T any](v T) Shared[T] {
	refs := new(atomic.Int64)
	refs.Store(1)
	return Shared[T]{v: v, refs: refs}
}

// Valid reports whether the handle refers to a live value:
// non-empty and with at least one remaining owner.
func (s Shared[T]) Valid() bool {
	return s.refs != nil && s.refs.Load() > 0
}

// Get returns the shared value without affecting the count.
// Returns (zero, false) on an empty or fully released handle.
func (s Shared[T]) Get() (T, bool) {
	if !s.Valid() {
		var zero T
		return zero, false
	}
	return s.v, true
}

// Clone returns a new owning handle aliasing the same value,
// incrementing the reference count. Cloning an empty handle yields an
// empty handle.
func (s Shared[T]) Clone() Shared[T] {
	if s.refs == nil {
		return Shared[T]{}
	}
	s.refs.Add(1)
	return s
}

// Release gives up this handle's ownership, decrementing the count.
// Releasing an empty handle is a no-op.
func (s Shared[T]) Release() {
	if s.refs != nil {
		s.refs.Add(-1)
	}
}

// Refs returns the current number of owners. Empty handles report zero.
func (s Shared[T]) Refs() int64 {
	if s.refs == nil {
		return 0
	}
	return s.refs.Load()
}
