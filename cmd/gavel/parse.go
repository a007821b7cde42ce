package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gavel/internal/ast"
	"gavel/internal/config"
	"gavel/internal/parser"
)

var parseFlags struct {
	format string
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a rule file",
	Long: `Parse a rule file and print its syntax tree.

Formats:
  text  indented tree
  yaml  document form, one mapping per node
  json  same document as yaml`,
	Args: cobra.ExactArgs(1),
	RunE: parseRules,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.format, "format", "f", "", "output format: text, yaml, json (uses config if not specified)")
}

func parseRules(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result, err := parser.ParseSource(string(source))
	if err != nil {
		return reportSyntaxError(cmd, path, string(source), err)
	}

	format := parseFlags.format
	if format == "" {
		format = cfg.Format
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatText:
		fmt.Fprint(out, ast.Dump(result.Program))
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Export(result.Program)); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Export(result.Program)); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
