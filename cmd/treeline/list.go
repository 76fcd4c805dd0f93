package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justinpbarnett/treeline/internal/config"
	"github.com/justinpbarnett/treeline/internal/git"
	"github.com/justinpbarnett/treeline/internal/listing"
	"github.com/justinpbarnett/treeline/internal/statusfile"
	"github.com/justinpbarnett/treeline/internal/term"
	"github.com/justinpbarnett/treeline/internal/ui"
)

const fallbackWidth = 80

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	full := fs.Bool("full", false, "include the branch-vs-main line diff column")
	ci := fs.Bool("ci", false, "query CI status for each branch")
	interactive := fs.Bool("i", false, "interactive picker")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	showFull := cfg.ShowFull() || *full
	withCI := cfg.CI() || *ci

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	client, err := git.NewClient(cwd)
	if err != nil {
		return err
	}

	rows, err := client.CollectRows(git.Options{BranchDiff: showFull, CI: withCI})
	if err != nil {
		return err
	}

	statuses, err := statusfile.Load(client.RepoRoot())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	for i := range rows {
		rows[i].UserStatus = statuses[rows[i].Branch]
	}

	styles := listing.NewStyles(cfg.UI.Theme)

	if *interactive {
		return runPicker(rows, showFull, withCI, styles)
	}

	renderer := listing.NewRenderer(rows, term.Width(fallbackWidth), showFull, withCI, styles)
	fmt.Println(renderer.Render())
	return nil
}

// runPicker drives the interactive table. The TUI draws on stderr so the
// picked path is the only thing on stdout, which lets shell wrappers do
// `cd "$(treeline list -i)"`.
func runPicker(rows []listing.Row, showFull, withCI bool, styles listing.Styles) error {
	app := ui.NewApp(rows, showFull, withCI, styles)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	if a, ok := final.(ui.App); ok && a.Choice() != "" {
		fmt.Println(a.Choice())
	}
	return nil
}
