package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"gavel/internal/ast"
	"gavel/internal/parser"
)

// NewSyntaxError creates a builder for lexer and parser diagnostics
func NewSyntaxError(code, message string, pos ast.Position) *ErrorBuilder {
	return NewSemanticError(code, message, pos)
}

// FromError converts a *parser.ScanError or *parser.ParseError into a
// diagnostic. ok is false for any other error.
func FromError(err error) (CompilerError, bool) {
	var scanErr *parser.ScanError
	if stderrors.As(err, &scanErr) {
		return FromScanError(scanErr), true
	}
	var parseErr *parser.ParseError
	if stderrors.As(err, &parseErr) {
		return FromParseError(parseErr), true
	}
	return CompilerError{}, false
}

func FromScanError(err *parser.ScanError) CompilerError {
	switch err.Kind {
	case parser.InvalidNumberLiteral:
		return NewSyntaxError(ErrorInvalidNumberLiteral,
			fmt.Sprintf("number literal %s is too large", err.Text), err.Position).
			WithLength(err.Length).
			WithNote("numbers must fit in a signed 64-bit integer").
			Build()
	}

	builder := NewSyntaxError(ErrorUnexpectedCharacter,
		fmt.Sprintf("unexpected character %q", err.Char), err.Position).
		WithLength(1)

	switch err.Char {
	case '!':
		builder = builder.WithReplacement("use '!=' for inequality", "!=", err.Position, 1)
	case '"', '\'':
		builder = builder.WithNote("quoted strings are not supported; set members are bare identifiers")
	case '&', '|':
		builder = builder.WithSuggestion("use 'and' / 'or' to combine conditions")
	}

	return builder.
		WithHelp("rules contain identifiers, numbers, keywords, comparison operators and the symbols { } ( ) [ ] , . ;").
		Build()
}

func FromParseError(err *parser.ParseError) CompilerError {
	pos := err.Position()

	switch err.Kind {
	case parser.UnexpectedEndOfInput:
		builder := NewSyntaxError(ErrorUnexpectedEndOfInput, err.Error(), pos).WithLength(1)
		if err.Expected == "'if'" || err.Expected == "'}'" {
			builder = builder.WithSuggestion("close the rule with '}'")
		}
		return builder.Build()

	case parser.UnexpectedToken:
		return NewSyntaxError(ErrorUnexpectedToken,
			fmt.Sprintf("unexpected %s", err.Found), pos).
			WithLength(err.Length()).
			WithHelp("statements must appear inside a 'rule NAME { ... }' block").
			Build()

	case parser.NestingTooDeep:
		return NewSyntaxError(ErrorNestingTooDeep,
			fmt.Sprintf("condition is nested more than %d levels deep", parser.MaxNestingDepth), pos).
			WithLength(err.Length()).
			WithHelp("split the condition across several statements").
			Build()
	}

	builder := NewSyntaxError(ErrorExpectedToken,
		fmt.Sprintf("expected %s, found %s", err.Expected, err.Found), pos).
		WithLength(err.Length())

	found := err.Found
	switch {
	case err.Expected == "action keyword":
		if found.Type == parser.IDENTIFIER {
			builder = suggestNames(builder, found.Lexeme, ast.ActionNames())
		}
		builder = builder.WithNote(fmt.Sprintf("valid actions: %s", strings.Join(ast.ActionNames(), ", ")))

	case err.Expected == "comparison operator" && found.Lexeme == "=":
		builder = builder.WithReplacement("use '==' to compare for equality", "==", pos, 1)

	case found.Type == parser.KEYWORD && (err.Expected == "rule name" ||
		err.Expected == "set member" || strings.HasPrefix(err.Expected, "field name")):
		builder = builder.WithNote(fmt.Sprintf("'%s' is a reserved keyword", found.Lexeme))
	}

	return builder.Build()
}

func suggestNames(builder *ErrorBuilder, name string, candidates []string) *ErrorBuilder {
	similar := findSimilarNames(name, candidates)
	switch len(similar) {
	case 0:
		return builder
	case 1:
		return builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		return builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
}
