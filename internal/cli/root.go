// Package cli implements the tspbb command-line interface.
//
// Commands:
//   - serve:  run the HTTP solve service
//   - solve:  solve a matrix file locally
//   - client: interactive line client for a running server
//   - gen:    write a seeded random instance
//
// All commands accept --verbose (-v) for debug logging and --config for a
// YAML configuration file. The logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values shown by --version; main injects them via
// ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	verbose    bool
	configPath string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tspbb",
		Short:         "Exact travelling-salesman solver (branch and bound)",
		Long:          `tspbb finds a minimum-cost Hamiltonian cycle through a weighted directed graph given as a distance matrix, using best-first branch and bound with Little's reduction bound.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tspbb %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newClientCmd(opts))
	root.AddCommand(newGenCmd(opts))

	return root
}

// Execute runs the CLI with ctx, which main cancels on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(os.Stderr, "%v", err)
	}
	return err
}
