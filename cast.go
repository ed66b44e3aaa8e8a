// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Unchecked narrowing conversions.
//
// Cast and its shape variants are for values the caller has already
// established to be instances of To, typically behind an [IsA] check.
// Violating that premise is a contract violation and panics; it is never
// reported as a recoverable result. [DynCast] is the total counterpart.
//
// No conversion copies, allocates, or destroys the underlying value:
// every shape ends up viewing or owning the very same value it started
// from. The only ownership that moves is the unique handle's, and that
// moves, not duplicates.

// Cast narrows v to To. Panics if v is nil or not an instance of To,
// or if To is a capability-only class that no Go value can be narrowed to.
func Cast[To, B any](v B) To {
	if any(v) == nil {
		panic("rtti: cast of nil value")
	}
	return castValue[To](v)
}

// CastUnique narrows the ownership held by u to To.
//
// The source handle is consumed: after the call u is spent and the
// returned handle owns the original value. This is a transfer of the
// single owned slot, never a copy. Panics if u is empty or the owned
// value is not an instance of To.
func CastUnique[To, B any](u *Unique[B]) *Unique[To] {
	v, ok := u.Get()
	if !ok {
		panic("rtti: cast of empty unique handle")
	}
	to := castValue[To](v)
	_ = u.Release()
	return NewUnique(to)
}

// CastShared narrows the shared ownership held by s to To.
//
// The returned handle aliases the same value and the same reference
// count, which gains one owner; s remains a valid, independent owner.
// Panics if s is empty or the owned value is not an instance of To.
func CastShared[To, B any](s Shared[B]) Shared[To] {
	v, ok := s.Get()
	if !ok {
		panic("rtti: cast of empty shared handle")
	}
	to := castValue[To](v)
	s.refs.Add(1)
	return Shared[To]{v: to, refs: s.refs}
}

// CastOption unwraps o and narrows the contained value to To.
// Panics if o is empty or the value is not an instance of To.
func CastOption[To, B any](o Option[B]) To {
	v, ok := o.Get()
	if !ok {
		panic("rtti: cast of empty option")
	}
	return castValue[To](v)
}

// castValue is the shared narrowing step: membership first, then the
// dynamic-type view. Both failures are caller contract violations.
func castValue[To, B any](v B) To {
	if !memberOf[To](v) {
		panic("rtti: cast of incompatible type")
	}
	to, ok := asClass[To](v)
	if !ok {
		panic("rtti: cast to capability-only class")
	}
	return to
}
