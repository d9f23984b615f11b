package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"headsup.dev/headsup/internal/config"
	"headsup.dev/headsup/internal/gitdir"
	"headsup.dev/headsup/internal/output"
)

// newPromptCmd creates the prompt command
func newPromptCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "prompt [path]",
		Short: "Print a shell-prompt fragment for the current branch",
		Long: `Prompt prints the current branch formatted for embedding in a shell
prompt. When no branch information is available it prints nothing and exits
zero, so a broken prompt never breaks the shell.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			branch, ok := gitdir.Branch(pathArg(args))
			if !ok {
				return nil
			}

			// Detached HEADs carry the "..." marker appended by the parser.
			color := cfg.GetBranchColor()
			if strings.HasSuffix(branch, "...") {
				color = cfg.GetDetachedColor()
			}

			enabled := !noColor && output.ColorEnabled()
			styled := output.StyleBranch(branch, color, enabled)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), cfg.GetPromptFormat(), styled)
			return err
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
