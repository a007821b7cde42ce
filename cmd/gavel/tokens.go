package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gavel/internal/errors"
	"gavel/internal/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a rule file",
	Args:  cobra.ExactArgs(1),
	RunE:  printTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func printTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens, err := parser.Lex(string(source))
	if err != nil {
		return reportSyntaxError(cmd, path, string(source), err)
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%-8s %-10s %s\n", tok.Position, tok.Type, tok.Lexeme)
	}
	return nil
}

// reportSyntaxError prints a lexer or parser error with source context.
func reportSyntaxError(cmd *cobra.Command, path, source string, err error) error {
	diag, ok := errors.FromError(err)
	if !ok {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), errors.NewErrorReporter(path, source).FormatError(diag))
	return errCheckFailed
}
