package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/justinpbarnett/treeline/internal/listing"
)

const waitDuration = 3 * time.Second

func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

func TestPickerInitialRender(t *testing.T) {
	a := NewApp(pickerRows(), false, false, listing.NewStyles("none"))

	tm := teatest.NewTestModel(t, a, teatest.WithInitialTermSize(120, 40))
	tm.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	// WaitFor drains tm.Output(), and both strings arrive in the same frame,
	// so a second sequential wait would never see them; check both at once.
	teatest.WaitFor(
		t,
		tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Branch")) && bytes.Contains(bts, []byte("feature-x"))
		},
		teatest.WithDuration(waitDuration),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}

func TestPickerSelectFlow(t *testing.T) {
	a := NewApp(pickerRows(), false, false, listing.NewStyles("none"))

	tm := teatest.NewTestModel(t, a, teatest.WithInitialTermSize(120, 40))
	tm.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	waitForContains(t, tm, "feature-x")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration)).(App)
	if final.Choice() != "/home/dev/proj-x" {
		t.Errorf("choice: got %q, want %q", final.Choice(), "/home/dev/proj-x")
	}
}
