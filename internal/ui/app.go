// Package ui is the interactive picker: the same table the list command
// prints, plus a cursor. Enter prints the selected worktree path so a shell
// wrapper can cd into it.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/treeline/internal/listing"
	"github.com/justinpbarnett/treeline/internal/ui/clipboard"
)

// cursorGutter is the marker column in front of every table line.
const cursorGutter = 2

type App struct {
	rows     []listing.Row
	styles   listing.Styles
	showFull bool
	ci       bool

	width    int
	renderer *listing.Renderer
	cursor   int
	keys     KeyMap
	notice   string
	choice   string
	ready    bool
}

func NewApp(rows []listing.Row, showFull, ci bool, styles listing.Styles) App {
	return App{
		rows:     rows,
		styles:   styles,
		showFull: showFull,
		ci:       ci,
		keys:     DefaultKeyMap(),
	}
}

// Choice is the worktree path picked with enter, empty if the picker was
// quit.
func (a App) Choice() string {
	return a.choice
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.renderer = listing.NewRenderer(a.rows, msg.Width-cursorGutter, a.showFull, a.ci, a.styles)
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		a.notice = ""

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
		a.notice = ""

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
		a.notice = ""

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}
		a.notice = ""

	case key.Matches(msg, a.keys.Select):
		if path := a.selectedPath(); path != "" {
			a.choice = path
			return a, tea.Quit
		}
		a.notice = "no worktree for this branch"

	case key.Matches(msg, a.keys.Yank):
		if path := a.selectedPath(); path != "" {
			if err := clipboard.Write(path); err != nil {
				a.notice = "copy failed: " + err.Error()
			} else {
				a.notice = "copied " + path
			}
		} else {
			a.notice = "no worktree for this branch"
		}
	}
	return a, nil
}

func (a App) selectedPath() string {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return ""
	}
	return a.rows[a.cursor].Path
}

func (a App) View() string {
	if !a.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + a.renderer.RenderHeader() + "\n")
	for i, row := range a.rows {
		marker := "  "
		if i == a.cursor {
			marker = "▸ "
		}
		b.WriteString(marker + a.renderer.RenderRow(row) + "\n")
	}

	help := a.notice
	if help == "" {
		help = "j/k move · enter print path · y copy · q quit"
	}
	b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(help))
	return b.String()
}
