package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gavel/grammar"
	"gavel/internal/errors"
	"gavel/internal/parser"
	"gavel/internal/semantic"
)

var checkFlags struct {
	crossCheck bool
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check rule files for errors",
	Long: `Lex, parse and statically check rule files.

Lexer and parser errors stop processing of a file. Otherwise the checker
reports duplicate rule names, unknown duration units, conditions that compare
two literals, empty rules, repeated set members and double negation.

With --cross-check every file is also parsed by the declarative grammar and
the two syntax trees are compared.`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkRules,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFlags.crossCheck, "cross-check", false, "compare against the declarative grammar")
}

func checkRules(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()

	ok := true
	for _, path := range args {
		fileOK, err := checkFile(out, path, analyzerOptions(), checkFlags.crossCheck)
		if err != nil {
			return err
		}
		ok = ok && fileOK
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if !ok {
		fmt.Fprintln(out, color.RedString("Check failed after %s", formattedDuration))
		return errCheckFailed
	}

	fmt.Fprintln(out, color.GreenString("Successfully processed %s in %s", describeFiles(args), formattedDuration))
	return nil
}

// checkFile reports the diagnostics of one file to out. It returns false when
// any diagnostic is at error level or the cross-check disagrees; err is only
// set when the file cannot be read.
func checkFile(out io.Writer, path string, opts semantic.Options, crossCheck bool) (bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	reporter := errors.NewErrorReporter(path, string(source))

	result, parseErr := parser.ParseSource(string(source))
	var diagnostics []errors.CompilerError
	if parseErr != nil {
		diag, ok := errors.FromError(parseErr)
		if !ok {
			return false, parseErr
		}
		diagnostics = []errors.CompilerError{diag}
	} else {
		diagnostics = semantic.NewAnalyzer(opts).Analyze(result.Program, result.Positions)
	}

	fmt.Fprint(out, reporter.FormatAll(diagnostics))
	ok := !errors.HasErrors(diagnostics)

	if crossCheck && !crossCheckFile(out, path, string(source), result, parseErr) {
		ok = false
	}
	return ok, nil
}

// crossCheckFile parses source with the declarative grammar and compares the
// outcome with the hand-written parser's.
func crossCheckFile(out io.Writer, path, source string, result *parser.ParseResult, parseErr error) bool {
	if perr, ok := parseErr.(*parser.ParseError); ok && perr.Kind == parser.NestingTooDeep {
		// The declarative grammar has no depth limit.
		return true
	}

	tree, err := grammar.Parse(path, source)
	if err != nil {
		if parseErr != nil {
			// Both parsers reject the file.
			return true
		}
		fmt.Fprintln(out, color.YellowString("%s: cross-check: declarative grammar rejects the file", path))
		grammar.FormatError(out, source, err)
		return false
	}

	lowered, err := tree.Lower()
	if err != nil {
		if parseErr != nil {
			return true
		}
		fmt.Fprintln(out, color.YellowString("%s: cross-check: %v", path, err))
		return false
	}

	if parseErr != nil {
		fmt.Fprintln(out, color.YellowString("%s: cross-check: declarative grammar accepts a file the parser rejects", path))
		return false
	}

	if got, want := lowered.String(), result.Program.String(); got != want {
		fmt.Fprintln(out, color.YellowString("%s: cross-check: syntax trees differ", path))
		fmt.Fprintf(out, "parser:\n%s\ngrammar:\n%s\n", want, got)
		return false
	}
	return true
}

func describeFiles(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%d files", len(paths))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
