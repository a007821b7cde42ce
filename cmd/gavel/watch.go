package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gavel/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATH",
	Short: "Re-check rule files whenever they change",
	Long: `Watch a rule file or a directory tree and re-check each file after it is
saved. The quiet period and the file extensions come from the watch section of
the configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: watchRules,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchRules(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWatch(ctx, cmd, args[0])
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string) error {
	watcher, err := watch.New(watch.Config{
		Path:       path,
		Debounce:   cfg.Watch.Debounce,
		Extensions: cfg.Watch.Extensions,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.CyanString("Watching %s for changes...", path))

	// Callbacks for different files may overlap.
	var mu sync.Mutex
	return watcher.Watch(ctx, func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		ok, err := checkFile(out, changed, analyzerOptions(), false)
		switch {
		case err != nil:
			fmt.Fprintln(out, color.RedString("%s: %v", changed, err))
		case ok:
			fmt.Fprintln(out, color.GreenString("%s: ok", changed))
		}
	})
}
