package parser

import "gavel/internal/ast"

// ParseSource lexes and parses source in one step. The error is the
// *ScanError or *ParseError that stopped processing. When lexing succeeded but
// parsing failed, the returned result still carries the tokens and a nil
// Program.
func ParseSource(source string) (*ParseResult, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	program, err := parser.ParseProgram()
	if err != nil {
		return &ParseResult{Tokens: tokens}, err
	}

	return &ParseResult{
		Program:   program,
		Tokens:    tokens,
		Positions: parser.Positions(),
	}, nil
}

// ParseConditionSource lexes and parses source as a single condition.
func ParseConditionSource(source string) (ast.Expr, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}
	return ParseCondition(tokens)
}
