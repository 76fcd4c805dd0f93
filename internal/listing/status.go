package listing

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BranchState describes how a branch relates to the default branch.
type BranchState int

const (
	StateNone BranchState = iota
	StateMatchesMain
	StateIntegrated
)

func (s BranchState) Glyph() string {
	switch s {
	case StateMatchesMain:
		return "≡"
	case StateIntegrated:
		return "✓"
	}
	return ""
}

// MainDivergence describes commit divergence from the default branch.
type MainDivergence int

const (
	DivergenceNone MainDivergence = iota
	DivergenceAhead
	DivergenceBehind
	DivergenceBoth
)

func (d MainDivergence) Glyph() string {
	switch d {
	case DivergenceAhead:
		return "↑"
	case DivergenceBehind:
		return "↓"
	case DivergenceBoth:
		return "↕"
	}
	return ""
}

// GitOperation is an in-progress repository operation.
type GitOperation int

const (
	OpNone GitOperation = iota
	OpRebase
	OpMerge
	OpBisect
)

func (o GitOperation) Glyph() string {
	switch o {
	case OpRebase:
		return "↻"
	case OpMerge:
		return "⋈"
	case OpBisect:
		return "÷"
	}
	return ""
}

// StatusSymbols is one row's worth of status glyphs. The three enum slots
// hold at most one glyph each; WorkingTree is a variable-length run such
// as "!+" built by the git collaborator.
type StatusSymbols struct {
	Branch      BranchState
	Divergence  MainDivergence
	Operation   GitOperation
	WorkingTree string
}

func (s StatusSymbols) IsZero() bool {
	return s.Branch == StateNone && s.Divergence == DivergenceNone &&
		s.Operation == OpNone && s.WorkingTree == ""
}

// Slot is a canonical status category. The declaration order is the
// display order of the status grid.
type Slot int

const (
	SlotBranchState Slot = iota
	SlotDivergence
	SlotOperation
	SlotWorkingTree
	numSlots
)

func (s StatusSymbols) at(slot Slot) string {
	switch slot {
	case SlotBranchState:
		return s.Branch.Glyph()
	case SlotDivergence:
		return s.Divergence.Glyph()
	case SlotOperation:
		return s.Operation.Glyph()
	case SlotWorkingTree:
		return s.WorkingTree
	}
	return ""
}

// PositionMask is the dense, ordered set of slots occupied by at least one
// row in a listing. Unused slots never become grid columns.
type PositionMask struct {
	slots []Slot
	index [numSlots]int
}

// MaskOf builds a mask from the union of the given rows' symbols.
func MaskOf(all ...StatusSymbols) PositionMask {
	var used [numSlots]bool
	for _, s := range all {
		for slot := Slot(0); slot < numSlots; slot++ {
			if s.at(slot) != "" {
				used[slot] = true
			}
		}
	}

	var m PositionMask
	for i := range m.index {
		m.index[i] = -1
	}
	for slot := Slot(0); slot < numSlots; slot++ {
		if used[slot] {
			m.index[slot] = len(m.slots)
			m.slots = append(m.slots, slot)
		}
	}
	return m
}

// Len is the number of occupied grid columns.
func (m PositionMask) Len() int { return len(m.slots) }

// Contains reports whether the slot is part of the grid.
func (m PositionMask) Contains(slot Slot) bool { return m.index[slot] >= 0 }

// Index maps a slot to its dense grid column, or -1 if unused.
func (m PositionMask) Index(slot Slot) int { return m.index[slot] }

// GridWidth is the rendered width of one row's grid under the mask.
// Singleton slots contribute 1 (glyph or space placeholder); the
// working-tree run contributes its actual display width.
func GridWidth(s StatusSymbols, m PositionMask) int {
	w := 0
	for _, slot := range m.slots {
		if g := s.at(slot); g != "" {
			w += ansi.StringWidth(g)
		} else {
			w++
		}
	}
	return w
}

// StatusContext carries the dataset-wide reductions every per-row render
// depends on. It is computed once per listing and never mutated.
type StatusContext struct {
	Mask          PositionMask
	MaxGridWidth  int
	HasUserStatus bool
}

// NewStatusContext reduces a full row set into the shared render context.
func NewStatusContext(rows []Row) StatusContext {
	symbols := make([]StatusSymbols, len(rows))
	for i, r := range rows {
		symbols[i] = r.Symbols
	}
	ctx := StatusContext{Mask: MaskOf(symbols...)}
	for _, r := range rows {
		if w := GridWidth(r.Symbols, ctx.Mask); w > ctx.MaxGridWidth {
			ctx.MaxGridWidth = w
		}
		if r.UserStatus != "" {
			ctx.HasUserStatus = true
		}
	}
	return ctx
}

// RenderStatus renders one row's status string: one substring per occupied
// mask slot in canonical order, a single space where the row has nothing at
// that slot. When any row in the dataset carries a user status, every row
// pads its grid to the dataset maximum before appending its own suffix, so
// the suffix column lines up across rows of differing symbol counts.
func RenderStatus(s StatusSymbols, userStatus string, ctx StatusContext) string {
	var b strings.Builder
	for _, slot := range ctx.Mask.slots {
		if g := s.at(slot); g != "" {
			b.WriteString(g)
		} else {
			b.WriteString(" ")
		}
	}
	if ctx.HasUserStatus {
		for w := GridWidth(s, ctx.Mask); w < ctx.MaxGridWidth; w++ {
			b.WriteByte(' ')
		}
		b.WriteString(userStatus)
	}
	return b.String()
}
