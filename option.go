// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Option represents a value that is either present (Some) or absent (None).
type Option[T any] struct {
	some bool
	v    T
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{some: true, v: v}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.some {
		return o.v, true
	}
	var zero T
	return zero, false
}

// GetOr returns the contained value, or fallback when absent.
func (o Option[T]) GetOr(fallback T) T {
	if o.some {
		return o.v
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.v)
	}
	return onNone()
}

// MapOption applies a function to the contained value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.v))
	}
	return None[U]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.v)
	}
	return None[U]()
}
