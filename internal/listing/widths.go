package listing

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/justinpbarnett/treeline/internal/ui/text"
)

// Column header labels — single source of truth for layout and rendering.
const (
	HeaderBranch      = "Branch"
	HeaderWorkingDiff = "Working ±"
	HeaderAheadBehind = "Main ↕"
	HeaderBranchDiff  = "Main ±"
	HeaderState       = "State"
	HeaderPath        = "Path"
	HeaderUpstream    = "Remote ↕"
	HeaderAge         = "Age"
	HeaderCI          = "CI"
	HeaderCommit      = "Commit"
	HeaderMessage     = "Message"
)

// commitHashWidth is the display width of the short commit hash.
const commitHashWidth = 8

// messageMeasureCap bounds how much of a commit message counts toward the
// message column's ideal width.
const messageMeasureCap = 50

// DiffWidths sizes a two-part numeric column ("+128 -147", "↑6 ↓1").
// The sub-part digit counts are tracked independently so "+999 -7" and
// "+7 -999" both size correctly, and so the renderer can align sub-parts.
type DiffWidths struct {
	Total         int
	AddedDigits   int
	RemovedDigits int
}

// ColumnWidths holds per-column widths: ideal widths out of
// CalculateColumnWidths, final widths out of the allocator.
type ColumnWidths struct {
	Branch      int
	WorkingDiff DiffWidths
	AheadBehind DiffWidths
	BranchDiff  DiffWidths
	States      int
	Path        int
	Upstream    DiffWidths
	Age         int
	CI          int
	Commit      int
	Message     int
}

// ColumnDataFlags records which optional columns have data in at least one
// row. Distinct from "fits in the budget": an empty column can still be
// shown for visual stability when space allows.
type ColumnDataFlags struct {
	WorkingDiff bool
	AheadBehind bool
	BranchDiff  bool
	Upstream    bool
	States      bool
	CI          bool
}

// fitHeader returns the larger of the data width and the header's display
// width. Every column width goes through this so headers never truncate.
func fitHeader(header string, dataWidth int) int {
	if hw := ansi.StringWidth(header); hw > dataWidth {
		return hw
	}
	return dataWidth
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}

// diffWidths builds a composite column width: sigil + digits + space +
// sigil + digits when any data exists, bounded below by the header.
func diffWidths(header string, addedDigits, removedDigits int) DiffWidths {
	total := 0
	if addedDigits > 0 || removedDigits > 0 {
		total = 1 + addedDigits + 1 + 1 + removedDigits
	}
	return DiffWidths{
		Total:         fitHeader(header, total),
		AddedDigits:   addedDigits,
		RemovedDigits: removedDigits,
	}
}

// FormatStates joins a row's state labels for the State column.
func FormatStates(states []string) string {
	return strings.Join(states, " ")
}

// CalculateColumnWidths reduces the row set into per-column ideal widths
// and data flags. Ahead/behind and branch-diff are measured only for
// non-primary rows; a composite column has data only if some row
// contributed a nonzero pair. The CI flag is exactly "was CI requested",
// which distinguishes "not queried" from "queried but empty".
func CalculateColumnWidths(rows []Row, ciRequested bool) (ColumnWidths, ColumnDataFlags) {
	var maxBranch, maxAge, maxMsg, maxStates, maxPath int
	var wtAdded, wtRemoved int
	var abAhead, abBehind int
	var bdAdded, bdRemoved int
	var upAhead, upBehind int

	for _, r := range rows {
		if w := ansi.StringWidth(r.Branch); w > maxBranch {
			maxBranch = w
		}
		if w := ansi.StringWidth(text.RelativeTime(r.CommitTime)); w > maxAge {
			maxAge = w
		}

		// Message sizing counts at most the first messageMeasureCap runes.
		msgLen := 0
		for range r.Message {
			msgLen++
			if msgLen == messageMeasureCap {
				break
			}
		}
		if msgLen > maxMsg {
			maxMsg = msgLen
		}

		if !r.Primary && !r.AheadBehind.IsZero() {
			abAhead = max(abAhead, digits(r.AheadBehind.Ahead))
			abBehind = max(abBehind, digits(r.AheadBehind.Behind))
		}
		if r.Kind == KindWorktree && !r.WorkingDiff.IsZero() {
			wtAdded = max(wtAdded, digits(r.WorkingDiff.Added))
			wtRemoved = max(wtRemoved, digits(r.WorkingDiff.Removed))
		}
		if !r.Primary && !r.BranchDiff.IsZero() {
			bdAdded = max(bdAdded, digits(r.BranchDiff.Added))
			bdRemoved = max(bdRemoved, digits(r.BranchDiff.Removed))
		}
		if r.Upstream.Active() {
			upAhead = max(upAhead, digits(r.Upstream.Ahead))
			upBehind = max(upBehind, digits(r.Upstream.Behind))
		}

		if s := FormatStates(r.States); s != "" {
			if w := ansi.StringWidth(s); w > maxStates {
				maxStates = w
			}
		}
		if w := ansi.StringWidth(r.Path); w > maxPath {
			maxPath = w
		}
	}

	widths := ColumnWidths{
		Branch:      fitHeader(HeaderBranch, maxBranch),
		WorkingDiff: diffWidths(HeaderWorkingDiff, wtAdded, wtRemoved),
		AheadBehind: diffWidths(HeaderAheadBehind, abAhead, abBehind),
		BranchDiff:  diffWidths(HeaderBranchDiff, bdAdded, bdRemoved),
		States:      fitHeader(HeaderState, maxStates),
		Path:        fitHeader(HeaderPath, maxPath),
		Upstream:    diffWidths(HeaderUpstream, upAhead, upBehind),
		Age:         fitHeader(HeaderAge, maxAge),
		CI:          fitHeader(HeaderCI, 2),
		Commit:      fitHeader(HeaderCommit, commitHashWidth),
		Message:     fitHeader(HeaderMessage, maxMsg),
	}

	flags := ColumnDataFlags{
		WorkingDiff: wtAdded > 0 || wtRemoved > 0,
		AheadBehind: abAhead > 0 || abBehind > 0,
		BranchDiff:  bdAdded > 0 || bdRemoved > 0,
		Upstream:    upAhead > 0 || upBehind > 0,
		States:      maxStates > 0,
		CI:          ciRequested,
	}

	return widths, flags
}
