package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Default prompt colors. Overridable through the user config.
const (
	DefaultBranchColor   = "#4dca7d" // green
	DefaultDetachedColor = "#f46251" // red
)

// ColorEnabled reports whether styled output should be produced: stdout must
// be a terminal and the terminal must support at least ANSI color.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// StyleBranch renders a branch name in the given hex color when color output
// is enabled, and returns it unchanged otherwise.
func StyleBranch(branch string, hexColor string, enabled bool) string {
	if !enabled {
		return branch
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
	return style.Render(branch)
}
