package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"gavel/internal/config"
	"gavel/internal/semantic"
)

var (
	// Global flags
	cfgFile   string
	noColor   bool
	verbosity int

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

// errCheckFailed is returned once diagnostics have already been printed.
var errCheckFailed = stderrors.New("check failed")

var rootCmd = &cobra.Command{
	Use:   "gavel",
	Short: "Gavel - data-governance rule checker",
	Long: `Gavel parses and checks data-governance rules such as

  rule retention {
      if record.age > 30 days and region in [EU, UK] then delete;
  }

Settings are read from .gavel.yaml in the working directory unless --config
points elsewhere. GAVEL_COLOR, GAVEL_FORMAT and GAVEL_WARNINGS_AS_ERRORS
override the file.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default "+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for debug)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	commonlog.Configure(verbosity, nil)

	loaded, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	// color detects the terminal on start-up; the config can only narrow or
	// force that decision.
	color.NoColor = noColor || !cfg.UseColor(!color.NoColor)
	return nil
}

func analyzerOptions() semantic.Options {
	return semantic.Options{
		Units:            cfg.Units,
		WarningsAsErrors: cfg.WarningsAsErrors,
	}
}
