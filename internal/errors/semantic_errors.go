package errors

import (
	"fmt"
	"strings"

	"gavel/internal/ast"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new error builder
func NewSemanticError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// DuplicateRule reports a rule whose name was already declared at first.
func DuplicateRule(name string, pos, first ast.Position) CompilerError {
	builder := NewSemanticError(ErrorDuplicateRule, fmt.Sprintf("rule '%s' is declared more than once", name), pos).
		WithLength(len([]rune("rule")))

	if first.IsValid() {
		builder = builder.WithNote(fmt.Sprintf("first declared at %s", first))
	}

	return builder.
		WithSuggestion(fmt.Sprintf("rename one of the '%s' rules", name)).
		WithSuggestion("or merge their statements into a single rule").
		Build()
}

// UnknownDurationUnit reports a duration whose unit is not in known.
func UnknownDurationUnit(unit string, pos ast.Position, known []string) CompilerError {
	builder := NewSemanticError(ErrorUnknownDurationUnit, fmt.Sprintf("unknown duration unit '%s'", unit), pos).
		WithLength(len([]rune(unit)))

	similar := findSimilarNames(unit, known)
	switch len(similar) {
	case 0:
		builder = builder.WithNote(fmt.Sprintf("known units: %s", strings.Join(known, ", ")))
	case 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	return builder.WithHelp("extra units can be allowed with 'units' in .gavel.yaml").Build()
}

// ConstantCondition reports a comparison whose operands are both literals.
func ConstantCondition(condition string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorConstantCondition, fmt.Sprintf("comparison '%s' does not reference any field", condition), pos).
		WithLength(len([]rune(condition))).
		WithNote("a comparison between two literals always has the same result").
		WithSuggestion("compare a field against the literal instead").
		Build()
}

// EmptyRule warns about a rule that can never apply an action.
func EmptyRule(name string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningEmptyRule, fmt.Sprintf("rule '%s' has no statements", name), pos).
		WithLength(len([]rune("rule"))).
		WithSuggestion("add an 'if ... then ...' statement or remove the rule").
		Build()
}

// DuplicateSetMember warns about a member repeated in an 'in' list.
func DuplicateSetMember(member, field string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningDuplicateSetMember,
		fmt.Sprintf("'%s' is listed more than once in the set for '%s'", member, field), pos).
		WithLength(len([]rune(field))).
		WithSuggestion(fmt.Sprintf("remove the repeated '%s'", member)).
		Build()
}

// DoubleNegation warns about 'not not x'.
func DoubleNegation(inner string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningDoubleNegation, "double negation has no effect", pos).
		WithLength(len([]rune("not not"))).
		WithReplacement("remove both 'not' keywords", inner, pos, len([]rune("not not"))).
		Build()
}

// Promote turns a warning into an error, keeping its code and context.
func Promote(err CompilerError) CompilerError {
	if err.Level == Warning {
		err.Level = Error
		err.Notes = append(err.Notes, "warnings are treated as errors")
	}
	return err
}

// Helper functions

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance over runes
func levenshteinDistance(s, t string) int {
	a, b := []rune(s), []rune(t)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
