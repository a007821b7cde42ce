package parser

import (
	"fmt"

	"gavel/internal/ast"
)

// TokenType is the lexical class of a token. The set is closed.
type TokenType int

const (
	ILLEGAL TokenType = iota

	KEYWORD    // rule, if, then, in, and, or, not, delete, mask, notify, encrypt
	IDENTIFIER // user, age, _tmp, delete123
	NUMBER     // 42
	SYMBOL     // { } ( ) [ ] , . ;
	OPERATOR   // == != >= <= = > <
)

var tokenTypeNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	SYMBOL:     "SYMBOL",
	OPERATOR:   "OPERATOR",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Value    int64 // NUMBER only
	Position ast.Position
}

// String describes the token the way diagnostics refer to it.
func (t Token) String() string {
	switch t.Type {
	case KEYWORD:
		return fmt.Sprintf("keyword '%s'", t.Lexeme)
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", t.Lexeme)
	case NUMBER:
		return fmt.Sprintf("number %d", t.Value)
	case SYMBOL:
		return fmt.Sprintf("symbol '%s'", t.Lexeme)
	case OPERATOR:
		return fmt.Sprintf("operator '%s'", t.Lexeme)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// Length is the token's width in characters.
func (t Token) Length() int {
	return len([]rune(t.Lexeme))
}

func (t Token) IsKeyword(kw string) bool {
	return t.Type == KEYWORD && t.Lexeme == kw
}

func (t Token) IsSymbol(sym string) bool {
	return t.Type == SYMBOL && t.Lexeme == sym
}
