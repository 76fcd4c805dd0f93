package git

import (
	"path/filepath"

	"github.com/justinpbarnett/treeline/internal/listing"
)

// Options selects the optional row metrics. BranchDiff is expensive on
// large repositories and CI needs the network, so both are off by default.
type Options struct {
	BranchDiff bool
	CI         bool
}

// CollectRows builds one listing row per worktree plus one per branch that
// has no worktree. Optional metrics that fail (a locked worktree, a gc'd
// ref) leave their fields zero rather than failing the whole listing.
func (c *Client) CollectRows(opts Options) ([]listing.Row, error) {
	worktrees, err := c.Worktrees()
	if err != nil {
		return nil, err
	}
	branches, err := c.Branches()
	if err != nil {
		return nil, err
	}
	defaultBranch := c.DefaultBranch()

	var rows []listing.Row
	inWorktree := make(map[string]bool, len(worktrees))

	for _, wt := range worktrees {
		inWorktree[wt.Branch] = true
		row := listing.Row{
			Kind:    listing.KindWorktree,
			Branch:  wt.Branch,
			Path:    shortenPath(wt.Path, c.repoRoot),
			Primary: wt.Primary,
		}
		if wt.Detached {
			row.Branch = "(detached)"
		}
		c.fillCommit(&row, wt.Head)
		c.fillWorktreeState(&row, wt.Path)
		c.fillBranchRelations(&row, defaultBranch, wt.Branch, opts)
		rows = append(rows, row)
	}

	for _, branch := range branches {
		if inWorktree[branch] {
			continue
		}
		row := listing.Row{
			Kind:   listing.KindBranch,
			Branch: branch,
		}
		c.fillCommit(&row, branch)
		c.fillBranchRelations(&row, defaultBranch, branch, opts)
		rows = append(rows, row)
	}

	return rows, nil
}

func (c *Client) fillCommit(row *listing.Row, ref string) {
	if ref == "" {
		return
	}
	commit, err := c.CommitInfo(ref)
	if err != nil {
		return
	}
	row.CommitHash = commit.Hash
	row.CommitTime = commit.Time
	row.Message = commit.Subject
}

func (c *Client) fillWorktreeState(row *listing.Row, worktreePath string) {
	if diff, err := c.WorkingDiff(worktreePath); err == nil {
		row.WorkingDiff = diff
	}

	status, err := c.WorkingTreeStatus(worktreePath)
	if err == nil {
		row.Symbols.WorkingTree = status.Run
		if status.Conflicts {
			row.States = append(row.States, "(conflicts)")
		}
	}

	op := c.Operation(worktreePath)
	row.Symbols.Operation = op
	switch op {
	case listing.OpRebase:
		row.States = append(row.States, "[rebasing]")
	case listing.OpMerge:
		row.States = append(row.States, "[merging]")
	case listing.OpBisect:
		row.States = append(row.States, "[bisecting]")
	}
}

func (c *Client) fillBranchRelations(row *listing.Row, defaultBranch, branch string, opts Options) {
	if branch == "" {
		return
	}

	if up, err := c.Upstream(branch); err == nil {
		row.Upstream = up
	}

	if row.Primary || branch == defaultBranch {
		return
	}

	ab, err := c.AheadBehind(defaultBranch, branch)
	if err != nil {
		return
	}
	row.AheadBehind = ab

	switch {
	case ab.Ahead == 0 && ab.Behind == 0:
		row.Symbols.Branch = listing.StateMatchesMain
	case ab.Ahead == 0:
		row.Symbols.Branch = listing.StateIntegrated
	}
	switch {
	case ab.Ahead > 0 && ab.Behind > 0:
		row.Symbols.Divergence = listing.DivergenceBoth
	case ab.Ahead > 0:
		row.Symbols.Divergence = listing.DivergenceAhead
	case ab.Behind > 0:
		row.Symbols.Divergence = listing.DivergenceBehind
	}

	if opts.BranchDiff {
		if diff, err := c.BranchDiff(defaultBranch, branch); err == nil {
			row.BranchDiff = diff
		}
	}
	if opts.CI {
		row.CIGlyph = c.CIStatus(branch)
	}
}

// shortenPath makes worktree paths readable in a narrow column: the main
// worktree is ".", siblings are shown relative to the repository's parent.
func shortenPath(path, repoRoot string) string {
	if path == repoRoot {
		return "."
	}
	if rel, err := filepath.Rel(filepath.Dir(repoRoot), path); err == nil && !filepath.IsAbs(rel) && rel != ".." && !hasDotDotPrefix(rel) {
		return rel
	}
	return path
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
