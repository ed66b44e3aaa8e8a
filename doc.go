// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rtti provides tag-based type tests and narrowing conversions for
// closed polymorphic hierarchies in Go.
//
// A hierarchy stores a small discriminator tag in every value, fixed at
// construction, and each class can decide from that tag alone whether a
// value belongs to it or to one of its descendants. On top of that
// convention the package offers three operation families, uniformly over
// five container shapes (plain value, possibly-nil value, exclusively-owned
// handle, shared handle, optional):
//
//   - [IsA]: membership test — "is this value an instance of class To?"
//   - [Cast]: unchecked narrowing — the caller has already established
//     membership; violations panic
//   - [DynCast]: checked narrowing — total over all inputs, returning the
//     shape's absent sentinel on any negative
//
// # Design Philosophy
//
// rtti provides:
//   - A closed-world alternative to reflection for hierarchies whose shape
//     is fixed at compile time
//   - Purity and zero overhead: every operation is a bounded, synchronous,
//     constant-time computation that reads the tag, never mutates the
//     value, and allocates nothing on the value's behalf
//   - Ownership-correct conversions: a unique handle is consumed and
//     re-wrapped around the same value, a shared handle aliases and gains
//     one counted owner, and failed checked conversions leave their source
//     untouched
//
// # Hierarchy Contract
//
// A hierarchy opts in by following two rules:
//
//   - Every value reports a tag through its base type, set exactly once by
//     the outermost constructor and never reassigned.
//   - Every queryable class provides the membership capability on its zero
//     value, discovered structurally:
//
//     ClassOf(b B) bool
//
//     where B is the hierarchy's base type. The predicate must be pure and
//     decide strictly from the tag. Pointer-typed classes declare it on the
//     pointer receiver and must not dereference, since the package invokes
//     it on a nil receiver.
//
// A class whose subtree has descendants accepts the contiguous tag interval
// spanning itself and all of them. [Span] expresses such intervals;
// [Assign] derives the numbering and the intervals from a declared [Class]
// tree so the interval invariant cannot drift from the structure.
//
// When the capability is present it is authoritative. Without it, the Go
// dynamic-type assertion decides, which covers querying for the value's own
// type or for an ancestor interface. A class that is neither is simply not
// an instance — never an error.
//
// Membership may also be queried against capability-only marker classes
// that correspond to no Go type among the hierarchy's values (for example
// "any commutative operator"). Conversions additionally need a Go type to
// narrow to: [Cast] panics and [DynCast] answers negatively when a
// capability admits a value that no Go assertion can express as To.
//
// # Operations by Shape
//
// Membership (populated containers only — empty input panics):
//
//   - [IsA]: plain value
//   - [IsAUnique], [IsAShared], [IsAOption]: handle shapes
//
// Unchecked narrowing (membership is a precondition — violations panic):
//
//   - [Cast]: plain value, same value viewed as To
//   - [CastUnique]: consumes the source handle, transfers ownership
//   - [CastShared]: aliases the count, source stays a valid owner
//   - [CastOption]: unwraps and narrows the contained value
//
// Checked narrowing (total — nil and empty inputs are ordinary negatives):
//
//   - [DynCast]: comma-ok result
//   - [DynCastUnique]: nil handle on failure, source keeps ownership
//   - [DynCastShared]: empty handle on failure, count unchanged
//   - [DynCastOption]: None on failure, no predicate runs on empty input
//
// Checking several classes at once is the call-site disjunction
// IsA[T1](v) || IsA[T2](v).
//
// # Container Types
//
// [Unique] is the exclusively-owned handle: one owner, released at most
// once, with the panicking [Unique.Release], the non-panicking
// [Unique.TryRelease] and the explicit [Unique.Discard]. [Shared] is the
// reference-counted handle with [Shared.Clone], [Shared.Release] and the
// observable [Shared.Refs]. [Option] is the optional shape with [Some],
// [None], [MatchOption], [MapOption] and [FlatMapOption].
//
// # Error Regimes
//
// Two deliberately distinct regimes:
//
//   - Contract violations — nil or empty input to an operation requiring a
//     populated container, or an unchecked conversion on a non-member —
//     panic with an "rtti:"-prefixed message. They are defects, not
//     recoverable outcomes.
//   - Expected negatives — the class does not match — are silent, typed
//     results: false, a nil or empty handle, or None. "Not an instance" is
//     a normal answer, never a panic.
//
// # Concurrency
//
// Every operation is purely computational: no I/O, no locking, no shared
// state of its own. Concurrent use is safe under ordinary concurrent-read
// rules for the caller's values. A [Unique] handle is consumed by at most
// one conversion, enforced by the same one-shot discipline that governs
// exclusive ownership generally.
//
// # Example
//
//	type Kind uint8
//
//	const (
//		KindCircle Kind = iota
//		KindSquare
//	)
//
//	type Shape interface{ Kind() Kind }
//
//	type Circle struct{ R float64 }
//
//	func (*Circle) Kind() Kind           { return KindCircle }
//	func (*Circle) ClassOf(s Shape) bool { return s.Kind() == KindCircle }
//
//	var s Shape = &Circle{R: 2}
//	if c, ok := rtti.DynCast[*Circle](s); ok {
//		_ = c.R // same value, narrower view
//	}
package rtti
