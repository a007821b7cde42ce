package parser

import (
	"fmt"

	"gavel/internal/ast"
)

type ScanErrorKind int

const (
	UnexpectedCharacter ScanErrorKind = iota
	InvalidNumberLiteral
)

// ScanError reports the first character sequence the scanner could not turn
// into a token.
type ScanError struct {
	Kind     ScanErrorKind
	Char     rune   // UnexpectedCharacter
	Text     string // InvalidNumberLiteral
	Position ast.Position
	Length   int
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case InvalidNumberLiteral:
		return fmt.Sprintf("invalid number literal %q at position %d", e.Text, e.Position.Offset)
	default:
		return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Position.Offset)
	}
}

type ParseErrorKind int

const (
	UnexpectedEndOfInput ParseErrorKind = iota
	UnexpectedToken
	ExpectedButFound
	NestingTooDeep
)

// MaxNestingDepth bounds how many parentheses and 'not' prefixes may be open
// at once.
const MaxNestingDepth = 1000

// ParseError aborts a parse. Found is nil for UnexpectedEndOfInput.
type ParseError struct {
	Kind     ParseErrorKind
	Expected string
	Found    *Token
	End      ast.Position // position just past the last token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEndOfInput:
		if e.Expected != "" {
			return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
		}
		return "unexpected end of input"
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Found)
	case NestingTooDeep:
		return fmt.Sprintf("condition nested deeper than %d levels at %s", MaxNestingDepth, e.Found)
	default:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
}

// Position is where the error should be reported: the offending token, or the
// end of input.
func (e *ParseError) Position() ast.Position {
	if e.Found != nil {
		return e.Found.Position
	}
	return e.End
}

// Length is the width of the offending token, at least 1.
func (e *ParseError) Length() int {
	if e.Found != nil && e.Found.Length() > 0 {
		return e.Found.Length()
	}
	return 1
}
