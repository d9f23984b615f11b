// Package cli contains the cobra commands for the headsup binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	headsuperrors "headsup.dev/headsup/internal/errors"
	"headsup.dev/headsup/internal/gitdir"
	"headsup.dev/headsup/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "headsup [path]",
		Short: "Headsup reports the current git branch for a path",
		Long: `Headsup reports the current git branch (or a short commit hash when HEAD
is detached) for a filesystem path, by reading the repository's HEAD file
directly. It is designed for shell prompts and scripts: fast, read-only,
and silent about why information is missing.`,
		Version: fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			splog := output.NewSplog()
			defer func() { _ = splog.Close() }()
			splog.SetQuiet(quiet)

			splog.Debug("resolving branch for %s", path)
			branch, ok := gitdir.Branch(path)
			if !ok {
				splog.Error("no branch information available for %s", path)
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return headsuperrors.ErrNoBranchInfo
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), branch)
			return err
		},
	}

	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the error message when no branch information is available")

	// Add subcommands
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newRepoRootCmd())
	rootCmd.AddCommand(newHashCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// pathArg returns the path argument for a subcommand, defaulting to the
// current directory.
func pathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}
