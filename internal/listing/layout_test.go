package listing

import (
	"testing"
	"time"
)

// fullDataset has every optional column populated on the non-primary row.
func fullDataset() []Row {
	primary := Row{
		Kind:       KindWorktree,
		Branch:     "main",
		Path:       ".",
		Primary:    true,
		CommitTime: time.Now(),
		CommitHash: "abc1234567",
		Message:    "Test",
	}
	feature := Row{
		Kind:        KindWorktree,
		Branch:      "feature-x",
		Path:        "api",
		CommitTime:  time.Now(),
		CommitHash:  "def7654321",
		Message:     "Add adaptive column layout",
		WorkingDiff: DiffPair{Added: 12, Removed: 3},
		AheadBehind: AheadBehind{Ahead: 3, Behind: 2},
		BranchDiff:  DiffPair{Added: 200, Removed: 30},
		Upstream:    Upstream{Remote: "origin", Ahead: 4},
		States:      []string{"[rebasing]"},
	}
	return []Row{primary, feature}
}

// primaryOnlyDataset has no optional data at all.
func primaryOnlyDataset() []Row {
	return []Row{{
		Kind:       KindWorktree,
		Branch:     "main",
		Path:       ".",
		Primary:    true,
		CommitTime: time.Now(),
		CommitHash: "abc1234567",
		Message:    "Initial commit",
	}}
}

func layoutFor(rows []Row, width int, showFull, ci bool) Layout {
	ideal, flags := CalculateColumnWidths(rows, ci)
	return ComputeLayout(ideal, flags, width, showFull, ci)
}

// visibleEnd returns the rightmost occupied column: max(pos + width).
func visibleEnd(l Layout) int {
	w, p := l.Widths, l.Positions
	end := 0
	check := func(pos, width int) {
		if width > 0 && pos+width > end {
			end = pos + width
		}
	}
	check(p.Branch, w.Branch)
	check(p.WorkingDiff, w.WorkingDiff.Total)
	check(p.AheadBehind, w.AheadBehind.Total)
	check(p.BranchDiff, w.BranchDiff.Total)
	check(p.States, w.States)
	check(p.Path, w.Path)
	check(p.Upstream, w.Upstream.Total)
	check(p.Age, w.Age)
	check(p.CI, w.CI)
	check(p.Commit, w.Commit)
	check(p.Message, w.Message)
	return end
}

func TestBranchStartsAtZero(t *testing.T) {
	l := layoutFor(fullDataset(), 80, false, false)
	if l.Widths.Branch == 0 {
		t.Fatal("branch should be visible at width 80")
	}
	if l.Positions.Branch != 0 {
		t.Errorf("branch position: got %d, want 0", l.Positions.Branch)
	}
}

func TestBudgetNeverExceeded(t *testing.T) {
	for _, rows := range [][]Row{fullDataset(), primaryOnlyDataset(), nil} {
		for width := 0; width <= 200; width += 5 {
			l := layoutFor(rows, width, true, true)
			if end := visibleEnd(l); end > width {
				t.Errorf("width %d: visible columns end at %d", width, end)
			}
		}
	}
}

func TestVisibleColumnsFitHeaders(t *testing.T) {
	for width := 0; width <= 200; width += 10 {
		l := layoutFor(fullDataset(), width, true, false)
		w := l.Widths
		checks := []struct {
			name   string
			header string
			width  int
		}{
			{"branch", HeaderBranch, w.Branch},
			{"working diff", HeaderWorkingDiff, w.WorkingDiff.Total},
			{"ahead/behind", HeaderAheadBehind, w.AheadBehind.Total},
			{"branch diff", HeaderBranchDiff, w.BranchDiff.Total},
			{"states", HeaderState, w.States},
			{"path", HeaderPath, w.Path},
			{"upstream", HeaderUpstream, w.Upstream.Total},
			{"age", HeaderAge, w.Age},
			{"commit", HeaderCommit, w.Commit},
			{"message", HeaderMessage, w.Message},
		}
		for _, c := range checks {
			if c.width > 0 && c.width < fitHeader(c.header, 0) {
				t.Errorf("width %d: %s narrower than header: %d", width, c.name, c.width)
			}
		}
	}
}

func TestFullDatasetAt80(t *testing.T) {
	l := layoutFor(fullDataset(), 80, false, false)
	w, p := l.Widths, l.Positions

	// Every data column fits; message does not (5 columns short of the floor).
	wantPos := []struct {
		name       string
		pos, width int
		gotPos     int
		gotWidth   int
	}{
		{"branch", 0, 9, p.Branch, w.Branch},
		{"working diff", 11, 9, p.WorkingDiff, w.WorkingDiff.Total},
		{"ahead/behind", 22, 6, p.AheadBehind, w.AheadBehind.Total},
		{"states", 30, 10, p.States, w.States},
		{"path", 42, 4, p.Path, w.Path},
		{"upstream", 48, 8, p.Upstream, w.Upstream.Total},
		{"age", 58, 7, p.Age, w.Age},
		{"commit", 67, 8, p.Commit, w.Commit},
	}
	for _, c := range wantPos {
		if c.gotPos != c.pos || c.gotWidth != c.width {
			t.Errorf("%s: got pos=%d width=%d, want pos=%d width=%d",
				c.name, c.gotPos, c.gotWidth, c.pos, c.width)
		}
	}
	if w.Message != 0 {
		t.Errorf("message should be hidden at 80, got width %d", w.Message)
	}
	if w.BranchDiff.Total != 0 {
		t.Errorf("branch diff is gated by showFull, got width %d", w.BranchDiff.Total)
	}
}

func TestShowFullDisplacesLowerPriority(t *testing.T) {
	l := layoutFor(fullDataset(), 80, true, false)
	if l.Widths.BranchDiff.Total != 8 {
		t.Errorf("branch diff: got %d, want 8", l.Widths.BranchDiff.Total)
	}
	// The 10 columns branch diff consumes push commit out of the budget.
	if l.Widths.Commit != 0 {
		t.Errorf("commit should be displaced at width 80 with --full, got %d", l.Widths.Commit)
	}
}

func TestMessageGetsLeftoverUpToCap(t *testing.T) {
	l := layoutFor(fullDataset(), 120, false, false)
	if l.MessageWidth != 43 {
		t.Errorf("message at 120: got %d, want 43", l.MessageWidth)
	}

	l = layoutFor(fullDataset(), 200, false, false)
	if l.MessageWidth != 99 {
		t.Errorf("message at 200: got %d, want 99", l.MessageWidth)
	}

	l = layoutFor(fullDataset(), 400, false, false)
	if l.MessageWidth != 100 {
		t.Errorf("message cap: got %d, want 100", l.MessageWidth)
	}
}

func TestWiderTerminalShowsMoreColumns(t *testing.T) {
	visible := func(l Layout) map[string]bool {
		w := l.Widths
		return map[string]bool{
			"branch":   w.Branch > 0,
			"working":  w.WorkingDiff.Total > 0,
			"ab":       w.AheadBehind.Total > 0,
			"states":   w.States > 0,
			"path":     w.Path > 0,
			"upstream": w.Upstream.Total > 0,
			"age":      w.Age > 0,
			"commit":   w.Commit > 0,
			"message":  w.Message > 0,
		}
	}

	prev := visible(layoutFor(fullDataset(), 80, false, false))
	for _, width := range []int{120, 160, 200} {
		cur := visible(layoutFor(fullDataset(), width, false, false))
		for name, was := range prev {
			if was && !cur[name] {
				t.Errorf("width %d hides %s which was visible at a smaller width", width, name)
			}
		}
		prev = cur
	}
}

func TestEmptyColumnsOnlyAfterMessage(t *testing.T) {
	// Width 53: message takes its floor and leaves 6 — no empty column
	// fits. Width 54 leaves 7, enough for the empty states column (5+2).
	l := layoutFor(primaryOnlyDataset(), 53, false, false)
	if l.Widths.Message == 0 {
		t.Fatal("message should be visible at width 53")
	}
	if l.Widths.WorkingDiff.Total != 0 || l.Widths.AheadBehind.Total != 0 || l.Widths.States != 0 {
		t.Error("no empty column should fit at width 53")
	}

	l = layoutFor(primaryOnlyDataset(), 54, false, false)
	if l.Widths.States != 5 {
		t.Errorf("empty states column should appear at width 54, got %d", l.Widths.States)
	}
}

func TestPrimaryOnlyAt80(t *testing.T) {
	l := layoutFor(primaryOnlyDataset(), 80, false, false)
	w, p := l.Widths, l.Positions

	if p.Branch != 0 || w.Branch != 6 {
		t.Errorf("branch: got pos=%d width=%d, want pos=0 width=6", p.Branch, w.Branch)
	}
	// Empty working diff and ahead/behind appear in pass 2 and land
	// between branch and path in display order.
	if p.WorkingDiff != 8 || w.WorkingDiff.Total != 9 {
		t.Errorf("working diff: got pos=%d width=%d, want pos=8 width=9", p.WorkingDiff, w.WorkingDiff.Total)
	}
	if p.AheadBehind != 19 || w.AheadBehind.Total != 6 {
		t.Errorf("ahead/behind: got pos=%d width=%d, want pos=19 width=6", p.AheadBehind, w.AheadBehind.Total)
	}
	if p.States != 27 || w.States != 5 {
		t.Errorf("states: got pos=%d width=%d, want pos=27 width=5", p.States, w.States)
	}
	if p.Path != 34 || w.Path != 4 {
		t.Errorf("path: got pos=%d width=%d, want pos=34 width=4", p.Path, w.Path)
	}
	if w.Upstream.Total != 0 {
		t.Errorf("upstream should not fit at 80, got %d", w.Upstream.Total)
	}
	if p.Age != 40 || w.Age != 7 {
		t.Errorf("age: got pos=%d width=%d, want pos=40 width=7", p.Age, w.Age)
	}
	if p.Commit != 49 || w.Commit != 8 {
		t.Errorf("commit: got pos=%d width=%d, want pos=49 width=8", p.Commit, w.Commit)
	}
	if p.Message != 59 || l.MessageWidth != 21 {
		t.Errorf("message: got pos=%d width=%d, want pos=59 width=21", p.Message, l.MessageWidth)
	}
	if end := visibleEnd(l); end != 80 {
		t.Errorf("visible end: got %d, want 80", end)
	}
}

func TestDegenerateWidths(t *testing.T) {
	for _, width := range []int{0, 1, 5, -3} {
		l := layoutFor(fullDataset(), width, false, false)
		if end := visibleEnd(l); end != 0 {
			t.Errorf("width %d: nothing should be visible, end=%d", width, end)
		}
	}
}

func TestGapSkippedNextToHiddenColumns(t *testing.T) {
	// With all middle columns hidden, the first visible column after
	// branch sits exactly one gap away.
	l := layoutFor(primaryOnlyDataset(), 30, false, false)
	w, p := l.Widths, l.Positions

	if w.Branch != 6 || p.Branch != 0 {
		t.Fatalf("branch: got pos=%d width=%d", p.Branch, w.Branch)
	}
	// Width 30: pass 1 takes branch, path, age; pass 2 fits ahead/behind.
	if w.AheadBehind.Total != 6 || p.AheadBehind != 8 {
		t.Errorf("ahead/behind: got pos=%d width=%d, want pos=8 width=6", p.AheadBehind, w.AheadBehind.Total)
	}
	if w.Path != 4 || p.Path != 16 {
		t.Errorf("path: got pos=%d width=%d, want pos=16 width=4", p.Path, w.Path)
	}
	if w.Age != 7 || p.Age != 22 {
		t.Errorf("age: got pos=%d width=%d, want pos=22 width=7", p.Age, w.Age)
	}
}

func TestCIRequestedReservesColumn(t *testing.T) {
	l := layoutFor(fullDataset(), 120, false, true)
	if l.Widths.CI != 2 {
		t.Errorf("CI column: got %d, want 2", l.Widths.CI)
	}

	l = layoutFor(fullDataset(), 120, false, false)
	if l.Widths.CI != 0 {
		t.Errorf("CI column without request: got %d, want 0", l.Widths.CI)
	}
}
