package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"headsup.dev/headsup/internal/config"
	"headsup.dev/headsup/internal/output"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up the headsup configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			splog := output.NewSplog()
			defer func() { _ = splog.Close() }()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var promptFormat string
			formatPrompt := &survey.Input{
				Message: "Prompt format (%s receives the branch name)",
				Default: cfg.GetPromptFormat(),
			}
			if err := survey.AskOne(formatPrompt, &promptFormat); err != nil {
				return fmt.Errorf("canceled")
			}

			var branchColor string
			colorPrompt := &survey.Input{
				Message: "Branch color (hex)",
				Default: cfg.GetBranchColor(),
			}
			if err := survey.AskOne(colorPrompt, &branchColor); err != nil {
				return fmt.Errorf("canceled")
			}

			var detachedColor string
			detachedPrompt := &survey.Input{
				Message: "Detached HEAD color (hex)",
				Default: cfg.GetDetachedColor(),
			}
			if err := survey.AskOne(detachedPrompt, &detachedColor); err != nil {
				return fmt.Errorf("canceled")
			}

			cfg.PromptFormat = &promptFormat
			cfg.BranchColor = &branchColor
			cfg.DetachedColor = &detachedColor

			if err := cfg.Save(); err != nil {
				return err
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}
			splog.Info("Configuration written to %s", configPath)

			return nil
		},
	}
}
