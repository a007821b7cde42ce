package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Top-level constructs
	PROGRAM
	RULE
	STATEMENT

	// Conditions
	OR_EXPR
	AND_EXPR
	NOT_EXPR
	GROUP_EXPR
	COMPARE_EXPR
	IN_EXPR

	// Operands
	NUMBER_OPERAND
	DURATION_OPERAND
	FIELD_OPERAND
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "Illegal",
	PROGRAM:          "Program",
	RULE:             "Rule",
	STATEMENT:        "Statement",
	OR_EXPR:          "Or",
	AND_EXPR:         "And",
	NOT_EXPR:         "Not",
	GROUP_EXPR:       "Group",
	COMPARE_EXPR:     "Compare",
	IN_EXPR:          "In",
	NUMBER_OPERAND:   "Number",
	DURATION_OPERAND: "Duration",
	FIELD_OPERAND:    "Field",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Position is a location in rule source text.
type Position struct {
	Offset int // characters consumed before this point, 0-based
	Line   int // 1-based
	Column int // 1-based, one column per character (tabs included)
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
