// Package main provides the entry point for the git-changes-view CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DanEscher98/git-changes-view/cmd/git-changes-view/commands"
	"github.com/DanEscher98/git-changes-view/internal/version"
)

func main() {
	rootCmd := commands.NewViewCommand()
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		msg, tip := commands.FatalMessage(err)
		fmt.Fprintln(os.Stderr, msg)

		if tip != "" {
			fmt.Fprintln(os.Stderr, tip)
		}

		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "git-changes-view %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
