package ast

import "strings"

// Expr is a boolean condition. The set of implementations is closed.
type Expr interface {
	Node
	isExpr()
}

func (*OrExpr) isExpr()      {}
func (*AndExpr) isExpr()     {}
func (*NotExpr) isExpr()     {}
func (*GroupExpr) isExpr()   {}
func (*CompareExpr) isExpr() {}
func (*InExpr) isExpr()      {}

type OrExpr struct {
	Left  Expr
	Right Expr
}

type AndExpr struct {
	Left  Expr
	Right Expr
}

type NotExpr struct {
	Value Expr
}

// GroupExpr records explicit parentheses in the source. It is kept distinct
// from its child so printing reproduces the original grouping.
type GroupExpr struct {
	Value Expr
}

type CompareExpr struct {
	Left  Operand
	Op    CompOp
	Right Operand
}

// InExpr is a set-membership test. Set is never empty.
type InExpr struct {
	Field Field
	Set   []string
}

// Operand is one side of a comparison.
type Operand interface {
	Node
	isOperand()
}

func (*NumberOperand) isOperand()   {}
func (*DurationOperand) isOperand() {}
func (*FieldOperand) isOperand()    {}

type NumberOperand struct {
	Value int64
}

// DurationOperand is a number immediately followed by a unit identifier,
// e.g. `30 days`. The unit is not validated by the parser.
type DurationOperand struct {
	Value int64
	Unit  string
}

type FieldOperand struct {
	Field Field
}

// Field is a dotted record path such as user.age. Segments is never empty.
type Field struct {
	Segments []string
}

func NewField(segments ...string) Field {
	return Field{Segments: segments}
}

func (f Field) String() string {
	return strings.Join(f.Segments, ".")
}

// IsLiteral reports whether the operand is a number or duration.
func IsLiteral(op Operand) bool {
	switch op.(type) {
	case *NumberOperand, *DurationOperand:
		return true
	}
	return false
}
