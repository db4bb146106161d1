package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubledger-dev/clubledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "clubledger",
		Short:   "Sports club treasury and bank reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPendingCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newUnreconcileCommand())

	return rootCmd
}
