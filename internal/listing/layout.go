package listing

// Gap is the fixed spacing between two consecutive visible columns.
const Gap = 2

// Message column sizing tiers.
const (
	minMessage       = 20
	preferredMessage = 50
	maxMessage       = 100
)

// ColumnPositions holds the absolute 0-based start offset of each column.
// 0 means hidden for every column except Branch, which starts at 0 whenever
// it is visible (check its width).
type ColumnPositions struct {
	Branch      int
	WorkingDiff int
	AheadBehind int
	BranchDiff  int
	States      int
	Path        int
	Upstream    int
	Age         int
	CI          int
	Commit      int
	Message     int
}

// Layout is the allocator's result: final widths, absolute positions, and
// the realized message width.
type Layout struct {
	Widths       ColumnWidths
	Positions    ColumnPositions
	MessageWidth int
}

type columnID int

const (
	colWorkingDiff columnID = iota
	colAheadBehind
	colBranchDiff
	colStates
	colPath
	colUpstream
	colAge
	colCI
	colCommit
)

// columnSpec is one entry of the fixed priority order. enabled gates
// columns that are switched off for the whole listing (branch diff without
// --full, CI without the fetch flag); hasData selects the allocation pass.
type columnSpec struct {
	id      columnID
	ideal   int
	hasData bool
	enabled bool
}

// take attempts to allocate ideal columns plus the gap in front (no gap for
// the first column). Returns the column width on success, 0 on failure —
// fixed-format columns are never partially truncated.
func take(remaining *int, ideal int, first bool) int {
	if ideal == 0 {
		return 0
	}
	need := ideal
	if !first {
		need += Gap
	}
	if *remaining < need {
		return 0
	}
	*remaining -= need
	return ideal
}

// ComputeLayout packs columns into the terminal width using two priority
// sweeps with message placement between them.
//
// Priority order (highest first): branch, working diff, ahead/behind,
// branch diff (gated by showFull), states, path, upstream, age, CI,
// commit, message. Pass 1 allocates columns with data; the message column
// then takes a tiered allocation (preferred width, else shrink to a floor,
// else hidden); pass 2 re-walks the same order for columns without data,
// purely for visual stability at wide widths; any leftover expands the
// message up to a cap. Placing the message between the passes means narrow
// terminals favor message text over cosmetic empty columns.
func ComputeLayout(ideal ColumnWidths, flags ColumnDataFlags, termWidth int, showFull, ciRequested bool) Layout {
	remaining := termWidth
	if remaining < 0 {
		remaining = 0
	}

	var w ColumnWidths

	// Branch first: identity, always has data, never charged a gap.
	w.Branch = take(&remaining, ideal.Branch, true)

	specs := []columnSpec{
		{colWorkingDiff, ideal.WorkingDiff.Total, flags.WorkingDiff, true},
		{colAheadBehind, ideal.AheadBehind.Total, flags.AheadBehind, true},
		{colBranchDiff, ideal.BranchDiff.Total, flags.BranchDiff, showFull},
		{colStates, ideal.States, flags.States, true},
		{colPath, ideal.Path, true, true},
		{colUpstream, ideal.Upstream.Total, flags.Upstream, true},
		{colAge, ideal.Age, true, true},
		{colCI, ideal.CI, flags.CI, ciRequested},
		{colCommit, ideal.Commit, true, true},
	}

	sweep := func(withData bool) {
		for _, s := range specs {
			if !s.enabled || s.hasData != withData {
				continue
			}
			if take(&remaining, s.ideal, false) == 0 {
				continue
			}
			switch s.id {
			case colWorkingDiff:
				w.WorkingDiff = ideal.WorkingDiff
			case colAheadBehind:
				w.AheadBehind = ideal.AheadBehind
			case colBranchDiff:
				w.BranchDiff = ideal.BranchDiff
			case colStates:
				w.States = ideal.States
			case colPath:
				w.Path = ideal.Path
			case colUpstream:
				w.Upstream = ideal.Upstream
			case colAge:
				w.Age = ideal.Age
			case colCI:
				w.CI = ideal.CI
			case colCommit:
				w.Commit = ideal.Commit
			}
		}
	}

	// Pass 1: columns with data, in priority order.
	sweep(true)

	// Message placement: before empty columns, so message outranks them.
	messageWidth := 0
	switch {
	case remaining >= preferredMessage+Gap:
		messageWidth = preferredMessage
	case remaining >= minMessage+Gap:
		messageWidth = min(remaining-Gap, ideal.Message)
	}
	if messageWidth > 0 {
		remaining -= messageWidth + Gap
		if remaining < 0 {
			remaining = 0
		}
		w.Message = min(messageWidth, ideal.Message)
	}

	// Pass 2: empty columns, for stable positions when width allows.
	sweep(false)

	// Leftover goes back to the message, up to the cap.
	if w.Message > 0 && w.Message < maxMessage && remaining > 0 {
		w.Message += min(remaining, maxMessage-w.Message)
	}

	return Layout{
		Widths:       w,
		Positions:    computePositions(w),
		MessageWidth: w.Message,
	}
}

// computePositions walks the display order once, accumulating width + gap
// and skipping hidden columns so no gap is charged next to them.
func computePositions(w ColumnWidths) ColumnPositions {
	pos := 0
	advance := func(width int) int {
		if width == 0 {
			return 0
		}
		start := pos
		if pos != 0 {
			start = pos + Gap
		}
		pos = start + width
		return start
	}

	return ColumnPositions{
		Branch:      advance(w.Branch),
		WorkingDiff: advance(w.WorkingDiff.Total),
		AheadBehind: advance(w.AheadBehind.Total),
		BranchDiff:  advance(w.BranchDiff.Total),
		States:      advance(w.States),
		Path:        advance(w.Path),
		Upstream:    advance(w.Upstream.Total),
		Age:         advance(w.Age),
		CI:          advance(w.CI),
		Commit:      advance(w.Commit),
		Message:     advance(w.Message),
	}
}
