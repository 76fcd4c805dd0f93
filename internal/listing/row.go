// Package listing computes the column layout for the worktree/branch table.
// Everything in this package is pure: rows and a terminal width go in, final
// widths, positions, and rendered strings come out. All git plumbing, path
// shortening, and terminal probing live in their own packages.
package listing

import "time"

// Kind distinguishes rows backed by a checked-out worktree from plain
// branches that only exist as refs.
type Kind int

const (
	KindWorktree Kind = iota
	KindBranch
)

// DiffPair is an added/removed line count pair, rendered as "+a -r".
type DiffPair struct {
	Added   int
	Removed int
}

func (d DiffPair) IsZero() bool {
	return d.Added == 0 && d.Removed == 0
}

// AheadBehind counts commits relative to another ref.
type AheadBehind struct {
	Ahead  int
	Behind int
}

func (a AheadBehind) IsZero() bool {
	return a.Ahead == 0 && a.Behind == 0
}

// Upstream describes the tracking relationship with a remote branch.
// A zero Remote means no upstream is configured.
type Upstream struct {
	Remote string
	Ahead  int
	Behind int
}

func (u Upstream) Active() bool {
	return u.Remote != ""
}

// Row is one line of the listing. Optional fields are zero when the
// upstream collaborator had nothing to report; the calculator treats
// zero pairs as "no data".
type Row struct {
	Kind   Kind
	Branch string

	// Path is the worktree path, already shortened by the caller.
	// Empty for branch-only rows.
	Path string

	CommitHash string
	CommitTime time.Time
	Message    string

	// Primary marks the main worktree; ahead/behind and branch-diff
	// columns are meaningless for it and are never measured.
	Primary bool

	WorkingDiff DiffPair    // uncommitted changes, worktree rows only
	AheadBehind AheadBehind // commits vs the default branch
	BranchDiff  DiffPair    // line diff vs the default branch
	Upstream    Upstream

	// States holds rare-but-urgent labels such as "[rebasing]" or
	// "(conflicts)", already formatted by the caller.
	States []string

	CIGlyph string // single glyph, set only when CI was queried

	Symbols    StatusSymbols
	UserStatus string
}
