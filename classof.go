// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Membership resolution for a single target class.
//
// A target type opts into tag-based membership by providing the class
// capability method on its zero value:
//
//	ClassOf(b B) bool
//
// The capability is discovered through a structural interface assertion on
// the target's zero value, so it must be callable without an instance:
// value receivers and non-dereferencing pointer receivers both work, and
// the predicate must decide strictly from the tag it reads out of b.
//
// Interface targets have a nil zero value and therefore never carry the
// capability; for them the Go dynamic-type assertion is the membership
// relation, which is exactly the self-or-ancestor case.

// memberOf reports whether v belongs to class To.
//
// Resolution order: the capability, when present, is authoritative — a
// hierarchy's tags decide membership even where Go's method sets would
// disagree. Without a capability the dynamic-type assertion decides.
// A target that is neither assertible nor capability-bearing is simply
// not a class of v's hierarchy: the answer is false, never an error.
func memberOf[To, B any](v B) bool {
	var probe To
	if c, ok := any(probe).(interface{ ClassOf(B) bool }); ok {
		return c.ClassOf(v)
	}
	_, ok := any(v).(To)
	return ok
}

// asClass narrows v to To after membership has been established.
// The second result is false when the class admitted v by capability alone
// and no value of Go type To can represent it (a capability-only class).
func asClass[To, B any](v B) (To, bool) {
	to, ok := any(v).(To)
	return to, ok
}
