// Package repl reads rules or conditions line by line and prints what the
// parser makes of them.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gavel/internal/ast"
	"gavel/internal/errors"
	"gavel/internal/parser"
)

const PROMPT = ">> "

const replFile = "<repl>"

// Start runs the loop until in is exhausted. Lines whose first token is the
// 'rule' keyword are parsed as programs; anything else as a single condition. ":tokens" followed
// by text prints the token stream.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		Eval(line, out)
	}
}

// Eval handles a single input line.
func Eval(line string, out io.Writer) {
	if rest, ok := strings.CutPrefix(line, ":tokens"); ok {
		printTokens(strings.TrimSpace(rest), out)
		return
	}

	tokens, err := parser.Lex(line)
	if err != nil {
		printError(line, err, out)
		return
	}

	var node ast.Node
	if len(tokens) > 0 && tokens[0].IsKeyword("rule") {
		var program *ast.Program
		program, err = parser.Parse(tokens)
		node = program
	} else {
		var expr ast.Expr
		expr, err = parser.ParseCondition(tokens)
		node = expr
	}

	if err != nil {
		printError(line, err, out)
		return
	}

	fmt.Fprintf(out, "AST:\n%s", ast.Dump(node))
}

func printTokens(source string, out io.Writer) {
	tokens, err := parser.Lex(source)
	if err != nil {
		printError(source, err, out)
		return
	}
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s %-10s %s\n", tok.Position, tok.Type, tok.Lexeme)
	}
}

func printError(source string, err error, out io.Writer) {
	diag, ok := errors.FromError(err)
	if !ok {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprint(out, errors.NewErrorReporter(replFile, source).FormatError(diag))
}
