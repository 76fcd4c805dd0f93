// Package term probes the terminal. The layout engine never touches the
// terminal itself; callers pass the probed width in.
package term

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// Width returns the current width of stdout, or fallback when stdout is not
// a terminal (pipes, CI) or the probe fails.
func Width(fallback int) int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
