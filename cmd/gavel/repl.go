package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"gavel/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse rules and conditions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "there"
		if currentUser, err := user.Current(); err == nil {
			name = currentUser.Username
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the gavel REPL, %s!\n", name)
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
