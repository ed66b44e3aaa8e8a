// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti

// Tag layout support for hierarchy authors.
//
// A hierarchy stores one tag per value, fixed at construction, and each
// class decides membership from it. Classes with descendants claim a
// contiguous tag interval covering the whole subtree, so the tag order
// must mirror the class tree. [Span] is the membership primitive for
// hand-numbered hierarchies (iota constants with first/last markers);
// [Assign] derives both the numbering and the spans from a declared
// [Class] tree, so the interval invariant cannot drift from the
// structure.

// Tag constrains discriminator types: any integer-kinded type works.
type Tag interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Span is a contiguous tag interval covering a class and all of its
// descendants. The zero Span of an unsigned tag type contains only the
// zero tag; spans written by [Assign] for memberless classes contain
// nothing.
type Span[K Tag] struct {
	First, Last K
}

// Contains reports whether k falls inside the interval.
func (s Span[K]) Contains(k K) bool {
	return s.First <= k && k <= s.Last
}

// Class declares one class in a hierarchy layout passed to [Assign].
//
// Tag, when non-nil, receives the class's own discriminator; leave it nil
// for purely abstract classes that no value ever carries. Span, when
// non-nil, receives the interval spanning the class and its Sub tree.
type Class[K Tag] struct {
	Tag  *K
	Span *Span[K]
	Sub  []Class[K]
}

// Assign numbers a declared class tree depth-first starting at first,
// writing every class's tag and every subtree's span through the declared
// pointers. Returns the first unused tag, so independent trees can be
// laid out back to back.
func Assign[K Tag](first K, classes ...Class[K]) K {
	next := first
	for _, c := range classes {
		next = assignClassTree(next, c)
	}
	return next
}

func assignClassTree[K Tag](next K, c Class[K]) K {
	lo := next
	if c.Tag != nil {
		*c.Tag = next
		next++
	}
	for _, sub := range c.Sub {
		next = assignClassTree(next, sub)
	}
	if c.Span != nil {
		if next == lo {
			// An abstract class with no members spans nothing.
			*c.Span = Span[K]{First: 1, Last: 0}
		} else {
			*c.Span = Span[K]{First: lo, Last: next - 1}
		}
	}
	return next
}
