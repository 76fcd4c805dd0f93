package git

import (
	"strconv"
	"strings"

	"github.com/justinpbarnett/treeline/internal/listing"
)

// WorkingDiff sums uncommitted line changes in a worktree, staged and
// unstaged combined.
func (c *Client) WorkingDiff(worktreePath string) (listing.DiffPair, error) {
	out, err := c.run(worktreePath, "diff", "HEAD", "--numstat")
	if err != nil {
		return listing.DiffPair{}, err
	}
	return parseNumstat(out), nil
}

// BranchDiff sums line changes between the merge base with base and the
// branch tip.
func (c *Client) BranchDiff(base, branch string) (listing.DiffPair, error) {
	out, err := c.run("", "diff", base+"..."+branch, "--numstat")
	if err != nil {
		return listing.DiffPair{}, err
	}
	return parseNumstat(out), nil
}

// parseNumstat totals a --numstat listing: one "added\tremoved\tpath" line
// per file, "-" for binary files.
func parseNumstat(out string) listing.DiffPair {
	var pair listing.DiffPair
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}
		if n, err := strconv.Atoi(fields[0]); err == nil {
			pair.Added += n
		}
		if n, err := strconv.Atoi(fields[1]); err == nil {
			pair.Removed += n
		}
	}
	return pair
}
