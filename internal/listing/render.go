package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/justinpbarnett/treeline/internal/ui/text"
)

// Styles holds the lipgloss styles for the table. Styling never affects
// layout: widths are measured on plain text and color applied last.
type Styles struct {
	Header  lipgloss.Style
	Branch  lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	State   lipgloss.Style
	Dim     lipgloss.Style
	Status  lipgloss.Style
}

// NewStyles builds the style set for a theme. "none" disables color.
func NewStyles(theme string) Styles {
	if theme == "none" {
		return Styles{}
	}
	dim := lipgloss.NewStyle().Faint(true)
	s := Styles{
		Header:  dim,
		Branch:  lipgloss.NewStyle().Bold(true),
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		State:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Dim:     dim,
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
	if theme == "light" {
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Header = s.Dim
	}
	return s
}

// Renderer paints the header line and one line per row. The status grid is
// painted as a left margin in front of the table, so the table's own column
// positions keep their 0-based origin.
type Renderer struct {
	Layout  Layout
	Status  StatusContext
	Styles  Styles
	margin  int
	rowsCtx []Row
}

// NewRenderer runs the dataset-wide reductions (ideal widths, data flags,
// position mask, max grid width) and the allocator, in that order. Every
// per-row render depends on these values, so they are computed once here.
func NewRenderer(rows []Row, termWidth int, showFull, ciRequested bool, styles Styles) *Renderer {
	status := NewStatusContext(rows)

	margin := 0
	for _, r := range rows {
		if w := ansi.StringWidth(RenderStatus(r.Symbols, r.UserStatus, status)); w > margin {
			margin = w
		}
	}
	tableWidth := termWidth
	if margin > 0 {
		tableWidth -= margin + Gap
		if tableWidth < 0 {
			tableWidth = 0
		}
	}

	ideal, flags := CalculateColumnWidths(rows, ciRequested)
	layout := ComputeLayout(ideal, flags, tableWidth, showFull, ciRequested)

	return &Renderer{
		Layout:  layout,
		Status:  status,
		Styles:  styles,
		margin:  margin,
		rowsCtx: rows,
	}
}

// cell is one positioned piece of a line. Text is plain; style is applied
// at write time so positions stay honest.
type cell struct {
	pos   int
	width int
	text  string
	style lipgloss.Style
}

// paint writes cells left to right, padding with spaces up to each cell's
// absolute position and clipping each cell to its column width.
func (r *Renderer) paint(prefix string, cells []cell) string {
	var b strings.Builder
	b.WriteString(prefix)
	cur := ansi.StringWidth(prefix)
	if r.margin > 0 {
		pad := r.margin + Gap - cur
		for i := 0; i < pad; i++ {
			b.WriteByte(' ')
		}
		cur = r.margin + Gap
	}
	base := cur

	for _, c := range cells {
		if c.width == 0 || c.text == "" {
			continue
		}
		clipped := text.Truncate(c.text, c.width)
		start := base + c.pos
		for cur < start {
			b.WriteByte(' ')
			cur++
		}
		b.WriteString(c.style.Render(clipped))
		cur += ansi.StringWidth(clipped)
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderHeader paints the column header line.
func (r *Renderer) RenderHeader() string {
	w, p := r.Layout.Widths, r.Layout.Positions
	h := r.Styles.Header
	cells := []cell{
		{p.Branch, w.Branch, HeaderBranch, h},
		{p.WorkingDiff, w.WorkingDiff.Total, HeaderWorkingDiff, h},
		{p.AheadBehind, w.AheadBehind.Total, HeaderAheadBehind, h},
		{p.BranchDiff, w.BranchDiff.Total, HeaderBranchDiff, h},
		{p.States, w.States, HeaderState, h},
		{p.Path, w.Path, HeaderPath, h},
		{p.Upstream, w.Upstream.Total, HeaderUpstream, h},
		{p.Age, w.Age, HeaderAge, h},
		{p.CI, w.CI, HeaderCI, h},
		{p.Commit, w.Commit, HeaderCommit, h},
		{p.Message, w.Message, HeaderMessage, h},
	}
	return r.paint("", cells)
}

// formatPair renders a two-part numeric cell with sub-parts right-aligned
// to the dataset-wide digit counts, e.g. "+  7 -999". Each half carries its
// own style; paint measures widths ANSI-aware so styling stays layout-safe.
func formatPair(left, right string, pair DiffPair, dw DiffWidths, leftStyle, rightStyle lipgloss.Style) string {
	l := left + text.PadLeft(fmt.Sprintf("%d", pair.Added), dw.AddedDigits)
	r := right + text.PadLeft(fmt.Sprintf("%d", pair.Removed), dw.RemovedDigits)
	return leftStyle.Render(l) + " " + rightStyle.Render(r)
}

// RenderRow paints one row at the computed positions. The row's status
// string goes into the left margin, padded so the table stays aligned.
func (r *Renderer) RenderRow(row Row) string {
	w, p := r.Layout.Widths, r.Layout.Positions

	status := RenderStatus(row.Symbols, row.UserStatus, r.Status)
	prefix := ""
	if r.margin > 0 {
		prefix = r.Styles.Status.Render(text.PadRight(status, r.margin))
	}

	add, del := r.Styles.Added, r.Styles.Removed
	var working, aheadBehind, branchDiff, upstream string
	if row.Kind == KindWorktree && !row.WorkingDiff.IsZero() {
		working = formatPair("+", "-", row.WorkingDiff, w.WorkingDiff, add, del)
	}
	if !row.Primary && !row.AheadBehind.IsZero() {
		pair := DiffPair{Added: row.AheadBehind.Ahead, Removed: row.AheadBehind.Behind}
		aheadBehind = formatPair("↑", "↓", pair, w.AheadBehind, add, del)
	}
	if !row.Primary && !row.BranchDiff.IsZero() {
		branchDiff = formatPair("+", "-", row.BranchDiff, w.BranchDiff, add, del)
	}
	if row.Upstream.Active() {
		pair := DiffPair{Added: row.Upstream.Ahead, Removed: row.Upstream.Behind}
		upstream = formatPair("↑", "↓", pair, w.Upstream, add, del)
	}

	hash := row.CommitHash
	if len(hash) > commitHashWidth {
		hash = hash[:commitHashWidth]
	}

	plain := lipgloss.NewStyle()
	cells := []cell{
		{p.Branch, w.Branch, row.Branch, r.Styles.Branch},
		{p.WorkingDiff, w.WorkingDiff.Total, working, plain},
		{p.AheadBehind, w.AheadBehind.Total, aheadBehind, plain},
		{p.BranchDiff, w.BranchDiff.Total, branchDiff, plain},
		{p.States, w.States, FormatStates(row.States), r.Styles.State},
		{p.Path, w.Path, row.Path, r.Styles.Dim},
		{p.Upstream, w.Upstream.Total, upstream, plain},
		{p.Age, w.Age, text.RelativeTime(row.CommitTime), r.Styles.Dim},
		{p.CI, w.CI, row.CIGlyph, r.Styles.State},
		{p.Commit, w.Commit, hash, r.Styles.Dim},
		{p.Message, w.Message, text.Truncate(row.Message, r.Layout.MessageWidth), plain},
	}
	return r.paint(prefix, cells)
}

// Render paints the full table: header plus one line per row.
func (r *Renderer) Render() string {
	lines := make([]string, 0, len(r.rowsCtx)+1)
	lines = append(lines, r.RenderHeader())
	for _, row := range r.rowsCtx {
		lines = append(lines, r.RenderRow(row))
	}
	return strings.Join(lines, "\n")
}
