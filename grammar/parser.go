package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"gavel/internal/errors"
)

// Field paths are unbounded, so the In and Compare branches of Predicate may
// need to back off over many tokens.
const lookahead = 1024

var parser = participle.MustBuild[Program](
	participle.Lexer(RulesLexer),
	participle.Map(promoteKeywords, "Ident"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(lookahead),
)

// Parse parses source with the declarative grammar. filename is only used in
// error positions.
func Parse(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// FormatError writes a caret-style description of a grammar error to w.
func FormatError(w io.Writer, src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		fmt.Fprintln(w, color.RedString("Unexpected error: %s", err))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Fprintln(w, color.RedString("Syntax error at unknown location: %s", err))
		return
	}

	line := lines[pos.Line-1]
	caret := errors.CaretPadding(line, pos.Column) + "^"

	fmt.Fprintln(w, color.RedString("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, color.HiRedString(caret))
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}
