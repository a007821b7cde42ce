package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"gavel/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string       // Description of the suggestion
	Replacement string       // Suggested replacement text (optional)
	Position    ast.Position // Position to apply the fix (optional)
	Length      int          // Length of text to replace (optional)
}

// ErrorReporter renders diagnostics against the source they refer to.
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for one file.
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

var (
	dim       = color.New(color.Faint).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
	blue      = color.New(color.FgBlue).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow    = color.New(color.FgYellow, color.Bold).SprintFunc()
	blueBold  = color.New(color.FgBlue, color.Bold).SprintFunc()
	greenBold = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// gutter writes the left margin shared by every line below the header.
type gutter struct {
	b     *strings.Builder
	width int
}

func (g gutter) blank() string {
	return strings.Repeat(" ", g.width)
}

// rule writes "   │ text".
func (g gutter) rule(text string) {
	fmt.Fprintf(g.b, "%s %s %s\n", g.blank(), dim("│"), text)
}

// source writes a numbered source line; the focused line is bold.
func (g gutter) source(n int, text string, focused bool) {
	num := fmt.Sprintf("%*d", g.width, n)
	if focused {
		num = bold(num)
	} else {
		num = dim(num)
	}
	fmt.Fprintf(g.b, "%s %s %s\n", num, dim("│"), text)
}

// FormatError renders one diagnostic: a header, the source window around the
// position with an underline, then suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	pos := err.Position
	paint := levelColor(err.Level)

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", paint(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", paint(string(err.Level)), err.Message)
	}

	g := gutter{b: &b, width: max(len(strconv.Itoa(pos.Line+1)), 3)}
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", g.blank(), dim("-->"), er.filename, pos.Line, pos.Column)
	g.rule("")

	if line, ok := er.line(pos.Line - 1); ok {
		g.source(pos.Line-1, line, false)
	}
	if line, ok := er.line(pos.Line); ok {
		g.source(pos.Line, line, true)
		marker := strings.Repeat("^", max(err.Length, 1))
		g.rule(CaretPadding(line, pos.Column) + paint(marker))
	}
	if line, ok := er.line(pos.Line + 1); ok {
		g.source(pos.Line+1, line, false)
	}

	if len(err.Suggestions) > 0 {
		g.rule("")
	}
	for i, s := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&b, "%s %s %s: %s\n", g.blank(), cyan("help"), cyan("try"), s.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", g.blank(), cyan("    "), s.Message)
		}
		if s.Replacement != "" {
			g.rule("")
			replacement := strings.ReplaceAll(s.Replacement, "\n", "\n"+g.blank()+" "+dim("│")+" ")
			fmt.Fprintf(&b, "%s %s %s\n", g.blank(), cyan("│"), cyan(replacement))
		}
	}

	for _, note := range err.Notes {
		g.rule(blue("note:") + " " + note)
	}
	if err.HelpText != "" {
		g.rule(green("help:") + " " + err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// FormatAll renders every diagnostic followed by a one-line summary.
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
	}
	if summary := er.Summary(errs); summary != "" {
		result.WriteString(summary + "\n")
	}
	return result.String()
}

// Summary counts errors and warnings, e.g. "policy.rules: 2 errors, 1 warning".
// It is empty when errs is empty.
func (er *ErrorReporter) Summary(errs []CompilerError) string {
	errorCount, warningCount := Count(errs)
	if errorCount == 0 && warningCount == 0 {
		return ""
	}

	var parts []string
	if errorCount > 0 {
		parts = append(parts, red(plural(errorCount, "error")))
	}
	if warningCount > 0 {
		parts = append(parts, yellow(plural(warningCount, "warning")))
	}
	return fmt.Sprintf("%s: %s", er.filename, strings.Join(parts, ", "))
}

// Count returns the number of errors and warnings in errs.
func Count(errs []CompilerError) (errorCount, warningCount int) {
	for _, err := range errs {
		switch err.Level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	return errorCount, warningCount
}

// HasErrors reports whether any diagnostic is at error level.
func HasErrors(errs []CompilerError) bool {
	n, _ := Count(errs)
	return n > 0
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return yellow
	case Note:
		return blueBold
	case Help:
		return greenBold
	default:
		return red
	}
}
