// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Checked narrowing conversions.
//
// DynCast composes the membership test with the unchecked conversion and
// is total: every input, including nil values and empty handles, produces
// the shape's absent sentinel instead of a panic. It is the recommended
// entry point for "try to view this value as a narrower type".
//
// Failure never disturbs the source. In particular a unique handle keeps
// its ownership on a failed conversion and is consumed only on success.

// DynCast narrows v to To, reporting success with the second result.
// A nil v is an ordinary negative: no predicate runs and (zero, false)
// is returned.
func DynCast[To, B any](v B) (To, bool) {
	var zero To
	if any(v) == nil {
		return zero, false
	}
	if !memberOf[To](v) {
		return zero, false
	}
	return asClass[To](v)
}

// DynCastUnique narrows the ownership held by u to To.
//
// On success the returned handle owns the original value and u is spent.
// On failure u is untouched — still owning, still valid — and the empty
// sentinel (a nil handle) is returned. An empty or spent u is a negative,
// not a violation.
func DynCastUnique[To, B any](u *Unique[B]) *Unique[To] {
	v, ok := u.Get()
	if !ok {
		return nil
	}
	to, ok := DynCast[To](v)
	if !ok {
		return nil
	}
	_ = u.Release()
	return NewUnique(to)
}

// DynCastShared narrows the shared ownership held by s to To.
//
// On success the returned handle aliases the same value and count, which
// gains one owner. On failure the count is unchanged and an empty handle
// is returned; s stays valid either way.
func DynCastShared[To, B any](s Shared[B]) Shared[To] {
	v, ok := s.Get()
	if !ok {
		return Shared[To]{}
	}
	to, ok := DynCast[To](v)
	if !ok {
		return Shared[To]{}
	}
	s.refs.Add(1)
	return Shared[To]{v: to, refs: s.refs}
}

// DynCastOption narrows the value inside o to To.
// An empty o yields None without evaluating any predicate; a contained
// value of the wrong class yields None as well.
func DynCastOption[To, B any](o Option[B]) Option[To] {
	v, ok := o.Get()
	if !ok {
		return None[To]()
	}
	to, ok := DynCast[To](v)
	if !ok {
		return None[To]()
	}
	return Some(to)
}
