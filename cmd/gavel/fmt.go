package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gavel/internal/parser"
)

var fmtFlags struct {
	write bool
}

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE...",
	Short: "Print rule files in canonical form",
	Long: `Print rule files in canonical form: four-space indentation, one
statement per line, statements terminated by ';' and a blank line between
rules. With -w the files are rewritten in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: formatRules,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "write result to the source file instead of stdout")
}

func formatRules(cmd *cobra.Command, args []string) error {
	failed := false

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		result, err := parser.ParseSource(string(source))
		if err != nil {
			if reportErr := reportSyntaxError(cmd, path, string(source), err); reportErr != errCheckFailed {
				return reportErr
			}
			failed = true
			continue
		}

		formatted := result.Program.String() + "\n"
		if !fmtFlags.write {
			fmt.Fprint(cmd.OutOrStdout(), formatted)
			continue
		}
		if formatted == string(source) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}
