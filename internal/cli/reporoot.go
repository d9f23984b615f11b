package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"headsup.dev/headsup/internal/git"
)

// newRepoRootCmd creates the root-directory command
func newRepoRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root [path]",
		Short: "Print the repository top-level directory for a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathArg(args)

			root, err := git.RepoRoot(path)
			if err != nil {
				return fmt.Errorf("failed to find repository root: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}
}
