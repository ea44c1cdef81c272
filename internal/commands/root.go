package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salescan-dev/salescan/internal/buildinfo"
)

// ConfigFileName is the project configuration file looked up under the
// project root.
const ConfigFileName = "salescan.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "salescan",
		Short:   "Sales transaction analytics and reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
