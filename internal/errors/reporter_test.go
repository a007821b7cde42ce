package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/ast"
	"gavel/internal/parser"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `rule retention {
    if age > 30 dys then delete
}`

	reporter := NewErrorReporter("policy.rules", source)

	err := UnknownDurationUnit("dys", ast.Position{Offset: 33, Line: 2, Column: 17}, []string{"d", "day", "days"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnknownDurationUnit+"]")
	assert.Contains(t, formatted, "unknown duration unit 'dys'")
	assert.Contains(t, formatted, "policy.rules:2:17")
	assert.Contains(t, formatted, "did you mean one of: 'day', 'days'?")
	assert.Contains(t, formatted, "    if age > 30 dys then delete")
	assert.Contains(t, formatted, strings.Repeat(" ", 16)+"^^^")
	assert.Contains(t, formatted, "help:")
}

func TestFormatWarning(t *testing.T) {
	source := "rule r {}"
	reporter := NewErrorReporter("policy.rules", source)

	formatted := reporter.FormatError(EmptyRule("r", ast.Position{Line: 1, Column: 1}))
	assert.Contains(t, formatted, "warning["+WarningEmptyRule+"]")
	assert.Contains(t, formatted, "rule 'r' has no statements")
	assert.Contains(t, formatted, "^^^^")
}

func TestFormatAllSummary(t *testing.T) {
	reporter := NewErrorReporter("policy.rules", "rule r {}\nrule r {}")
	errs := []CompilerError{
		DuplicateRule("r", ast.Position{Line: 2, Column: 1}, ast.Position{Line: 1, Column: 1}),
		EmptyRule("r", ast.Position{Line: 1, Column: 1}),
		EmptyRule("r", ast.Position{Line: 2, Column: 1}),
	}

	out := reporter.FormatAll(errs)
	assert.Contains(t, out, "first declared at 1:1")
	assert.True(t, strings.HasSuffix(out, "policy.rules: 1 error, 2 warnings\n"), out)

	assert.Empty(t, reporter.Summary(nil))
	assert.True(t, HasErrors(errs))
	assert.False(t, HasErrors(errs[1:]))
}

func TestUnknownDurationUnitWithoutSuggestion(t *testing.T) {
	err := UnknownDurationUnit("fortnight", ast.Position{Line: 1, Column: 1}, []string{"days", "weeks"})
	assert.Equal(t, ErrorUnknownDurationUnit, err.Code)
	assert.Empty(t, err.Suggestions)
	require.Len(t, err.Notes, 1)
	assert.Equal(t, "known units: days, weeks", err.Notes[0])
}

func TestDoubleNegationReplacement(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 10}
	err := DoubleNegation("a == 1", pos)

	assert.Equal(t, Warning, err.Level)
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, "a == 1", err.Suggestions[0].Replacement)
	assert.Equal(t, 7, err.Suggestions[0].Length)
}

func TestPromote(t *testing.T) {
	warning := EmptyRule("r", ast.Position{Line: 1, Column: 1})
	promoted := Promote(warning)

	assert.Equal(t, Error, promoted.Level)
	assert.Equal(t, WarningEmptyRule, promoted.Code)
	assert.Contains(t, promoted.Notes, "warnings are treated as errors")

	// Errors pass through unchanged.
	constant := ConstantCondition("1 == 1", ast.Position{Line: 1, Column: 1})
	assert.Equal(t, constant, Promote(constant))
}

func diagnosticFor(t *testing.T, source string) CompilerError {
	t.Helper()
	_, err := parser.ParseSource(source)
	require.Error(t, err)
	diag, ok := FromError(err)
	require.True(t, ok)
	return diag
}

func TestFromScanError(t *testing.T) {
	diag := diagnosticFor(t, "rule r { if a @ b then mask }")
	assert.Equal(t, ErrorUnexpectedCharacter, diag.Code)
	assert.Equal(t, "unexpected character '@'", diag.Message)
	assert.Equal(t, 15, diag.Position.Column)

	diag = diagnosticFor(t, "rule r { if a ! b then mask }")
	require.Len(t, diag.Suggestions, 1)
	assert.Equal(t, "!=", diag.Suggestions[0].Replacement)

	diag = diagnosticFor(t, "rule r { if a > 99999999999999999999 then mask }")
	assert.Equal(t, ErrorInvalidNumberLiteral, diag.Code)
	assert.Equal(t, 20, diag.Length)
}

func TestFromParseError(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		code       string
		message    string
		column     int
		suggestion string
	}{
		{
			name:       "misspelled action",
			source:     "rule r { if a == 1 then mak }",
			code:       ErrorExpectedToken,
			message:    "expected action keyword, found identifier 'mak'",
			column:     25,
			suggestion: "did you mean 'mask'?",
		},
		{
			name:       "single equals",
			source:     "rule r { if a = 1 then mask }",
			code:       ErrorExpectedToken,
			message:    "expected comparison operator, found operator '='",
			column:     15,
			suggestion: "use '==' to compare for equality",
		},
		{
			name:    "missing condition",
			source:  "rule r { if then delete }",
			code:    ErrorExpectedToken,
			message: "expected condition, found keyword 'then'",
			column:  13,
		},
		{
			name:       "unterminated rule",
			source:     "rule r { if a == 1 then mask",
			code:       ErrorUnexpectedEndOfInput,
			message:    "unexpected end of input, expected 'if'",
			column:     29,
			suggestion: "close the rule with '}'",
		},
		{
			name:    "statement outside rule",
			source:  "if a == 1 then mask",
			code:    ErrorUnexpectedToken,
			message: "unexpected keyword 'if'",
			column:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := diagnosticFor(t, tt.source)
			assert.Equal(t, Error, diag.Level)
			assert.Equal(t, tt.code, diag.Code)
			assert.Equal(t, tt.message, diag.Message)
			assert.Equal(t, tt.column, diag.Position.Column)
			if tt.suggestion != "" {
				require.NotEmpty(t, diag.Suggestions)
				assert.Equal(t, tt.suggestion, diag.Suggestions[0].Message)
			}
		})
	}
}

func TestKeywordAsNameNote(t *testing.T) {
	diag := diagnosticFor(t, "rule notify { }")
	assert.Contains(t, diag.Notes, "'notify' is a reserved keyword")
}

func TestFromErrorIgnoresOtherErrors(t *testing.T) {
	_, ok := FromError(assert.AnError)
	assert.False(t, ok)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("mask", "mask"))
	assert.Equal(t, 1, levenshteinDistance("mak", "mask"))
	assert.Equal(t, 3, levenshteinDistance("", "day"))
	assert.Equal(t, 1, levenshteinDistance("größe", "große"))
}

func TestErrorCodeHelpers(t *testing.T) {
	assert.True(t, IsWarning(WarningDoubleNegation))
	assert.False(t, IsWarning(ErrorDuplicateRule))
	assert.Equal(t, "Syntax", GetErrorCategory(ErrorExpectedToken))
	assert.Equal(t, "Static Check", GetErrorCategory(ErrorConstantCondition))
	assert.Equal(t, "Warning", GetErrorCategory(WarningEmptyRule))
	assert.Equal(t, "Rule has no statements", GetErrorDescription(WarningEmptyRule))
}

func TestMarkerUnderTabIndentedLine(t *testing.T) {
	source := "rule r {\n\tif a = 1 then mask\n}"
	diag := diagnosticFor(t, source)
	require.Equal(t, 7, diag.Position.Column)

	formatted := NewErrorReporter("x.rules", source).FormatError(diag)
	assert.Contains(t, formatted, "x.rules:2:7")
	assert.Contains(t, formatted, "│ \tif a = 1 then mask\n")
	assert.Contains(t, formatted, "│ \t     ^\n", "the tab is kept so the caret sits under '='")
	assert.NotContains(t, formatted, "│        ^")
}

func TestCaretPadding(t *testing.T) {
	tests := []struct {
		line   string
		column int
		want   string
	}{
		{"if a = 1", 6, "     "},
		{"\tif a", 2, "\t"},
		{"\t\tx", 4, "\t\t "},
		{"größe = 1", 7, "      "},
		{"ab", 5, "    "},
		{"abc", 1, ""},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CaretPadding(tt.line, tt.column), "line %q column %d", tt.line, tt.column)
	}
}

func TestNestingTooDeepDiagnostic(t *testing.T) {
	source := "rule r { if " + strings.Repeat("(", parser.MaxNestingDepth+1) + "a == 1"
	diag := diagnosticFor(t, source)

	assert.Equal(t, ErrorNestingTooDeep, diag.Code)
	assert.Equal(t, "condition is nested more than 1000 levels deep", diag.Message)
	assert.Equal(t, 13+parser.MaxNestingDepth, diag.Position.Column)
	assert.Equal(t, "Syntax", GetErrorCategory(diag.Code))
}
