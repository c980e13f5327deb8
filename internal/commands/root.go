// Package commands wires the CLI surface. The core never reads flags or
// touches the filesystem on its own; everything it needs arrives through
// ledger.Options.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnc2ledger-dev/gnc2ledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gnc2ledger",
		Short:   "Convert GnuCash XML exports to ledger journals",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
