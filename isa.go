// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Membership predicates over every container shape.
//
// Each predicate requires a populated container: a nil value or empty
// handle is a contract violation and panics. Callers holding a possibly
// nil value should use [DynCast], which treats nil as an ordinary
// negative. Checking against several classes at once is the call-site
// disjunction IsA[T1](v) || IsA[T2](v).

// IsA reports whether v is an instance of class To.
//
// To may be v's own type, an interface it satisfies (the ancestor case),
// a class carrying the ClassOf capability, or a capability-only marker
// class with no Go representation among the hierarchy's values.
// Panics if v is nil.
func IsA[To, B any](v B) bool {
	if any(v) == nil {
		panic("rtti: isa of nil value")
	}
	return memberOf[To](v)
}

// IsAUnique reports whether the value owned by u is an instance of To.
// The handle is only read, never consumed. Panics if u is empty or spent.
func IsAUnique[To, B any](u *Unique[B]) bool {
	v, ok := u.Get()
	if !ok {
		panic("rtti: isa of empty unique handle")
	}
	return memberOf[To](v)
}

// IsAShared reports whether the value owned by s is an instance of To.
// The reference count is untouched. Panics if s is empty.
func IsAShared[To, B any](s Shared[B]) bool {
	v, ok := s.Get()
	if !ok {
		panic("rtti: isa of empty shared handle")
	}
	return memberOf[To](v)
}

// IsAOption reports whether the value inside o is an instance of To.
// Panics if o is empty.
func IsAOption[To, B any](o Option[B]) bool {
	v, ok := o.Get()
	if !ok {
		panic("rtti: isa of empty option")
	}
	return memberOf[To](v)
}
