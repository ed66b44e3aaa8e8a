// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtti_test

import (
	"math"

	"code.hybscloud.com/rtti"
)

// Test hierarchies shared across the test files.

// --- shapes: a flat hierarchy with hand-numbered tags ---

type shapeKind uint8

const (
	kindCircle shapeKind = iota
	kindRectangle
	kindTriangle
)

type shape interface{ Kind() shapeKind }

type circle struct{ radius float64 }

func (*circle) Kind() shapeKind { return kindCircle }
func (*circle) ClassOf(s shape) bool { return s.Kind() == kindCircle }
func (c *circle) area() float64 { return math.Pi * c.radius * c.radius }

type rectangle struct{ w, h float64 }

func (*rectangle) Kind() shapeKind { return kindRectangle }
func (*rectangle) ClassOf(s shape) bool { return s.Kind() == kindRectangle }
func (r *rectangle) area() float64 { return r.w * r.h }

type triangle struct{ base, height float64 }

func (*triangle) Kind() shapeKind { return kindTriangle }
func (*triangle) ClassOf(s shape) bool { return s.Kind() == kindTriangle }
func (t *triangle) area() float64 { return t.base * t.height / 2 }

// unrelated carries no capability and belongs to no hierarchy.
type unrelated struct{}

// --- nodes: the two-class tree hierarchy ---

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindBranch
)

type node interface{ Kind() nodeKind }

type leaf struct{}

func (*leaf) Kind() nodeKind { return kindLeaf }
func (*leaf) ClassOf(n node) bool { return n.Kind() == kindLeaf }

type branch struct{ left, right node }

func (*branch) Kind() nodeKind { return kindBranch }
func (*branch) ClassOf(n node) bool { return n.Kind() == kindBranch }

// --- exprs: a deep hierarchy with Assign-derived tags and spans ---

type exprKind uint8

var (
	kindNum exprKind
	kindAdd exprKind
	kindSub exprKind
	kindMul exprKind
	kindDiv exprKind

	binarySpan rtti.Span[exprKind]
	exprSpan   rtti.Span[exprKind]
)

func init() {
	rtti.Assign(exprKind(0), rtti.Class[exprKind]{
		Span: &exprSpan,
		Sub: []rtti.Class[exprKind]{
			{Tag: &kindNum},
			{Span: &binarySpan, Sub: []rtti.Class[exprKind]{
				{Tag: &kindAdd},
				{Tag: &kindSub},
				{Tag: &kindMul},
				{Tag: &kindDiv},
			}},
		},
	})
}

type expr interface {
	Kind() exprKind
	Eval() float64
}

type num struct{ val float64 }

func (*num) Kind() exprKind { return kindNum }
func (*num) ClassOf(e expr) bool { return e.Kind() == kindNum }
func (n *num) Eval() float64 { return n.val }

// binary covers the four operator classes; the operator is the tag,
// fixed at construction.
type binary struct {
	op    exprKind
	left  expr
	right expr
}

func (b *binary) Kind() exprKind { return b.op }
func (*binary) ClassOf(e expr) bool { return binarySpan.Contains(e.Kind()) }

func (b *binary) Eval() float64 {
	l, r := b.left.Eval(), b.right.Eval()
	switch b.op {
	case kindAdd:
		return l + r
	case kindSub:
		return l - r
	case kindMul:
		return l * r
	case kindDiv:
		return l / r
	}
	return 0
}

// commutative is a capability-only class: no expr value has this Go type,
// membership exists purely through the tag predicate.
type commutative struct{}

func (commutative) ClassOf(e expr) bool {
	k := e.Kind()
	return k == kindAdd || k == kindMul
}
