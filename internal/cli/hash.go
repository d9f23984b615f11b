package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"headsup.dev/headsup/internal/git"
)

// newHashCmd creates the hash command
func newHashCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "hash [path]",
		Short: "Print the fully resolved HEAD commit hash for a path",
		Long: `Hash resolves HEAD through symbolic references and packed refs and prints
the commit hash, which the plain branch lookup deliberately does not do.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := git.HeadHash(pathArg(args))
			if err != nil {
				return fmt.Errorf("failed to resolve HEAD: %w", err)
			}

			if short && len(hash) > 7 {
				hash = hash[:7]
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the abbreviated 7-character hash")

	return cmd
}
