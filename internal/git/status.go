package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/justinpbarnett/treeline/internal/listing"
)

// WorkingTreeStatus is the condensed result of `git status --porcelain`:
// the glyph run for the status grid plus a conflict flag for the State
// column.
type WorkingTreeStatus struct {
	Run       string
	Conflicts bool
}

// WorkingTreeStatus inspects a worktree's uncommitted state.
func (c *Client) WorkingTreeStatus(worktreePath string) (WorkingTreeStatus, error) {
	out, err := c.run(worktreePath, "status", "--porcelain")
	if err != nil {
		return WorkingTreeStatus{}, err
	}
	return parseWorkingTreeStatus(out), nil
}

// parseWorkingTreeStatus reduces porcelain status lines to the glyph run.
// Glyph order is fixed: "!" unstaged modifications, "+" staged changes,
// "?" untracked files.
func parseWorkingTreeStatus(out string) WorkingTreeStatus {
	var modified, staged, untracked, conflicts bool
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]
		switch {
		case x == '?' && y == '?':
			untracked = true
		case x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D'):
			conflicts = true
		default:
			if y != ' ' {
				modified = true
			}
			if x != ' ' {
				staged = true
			}
		}
	}

	var run strings.Builder
	if modified {
		run.WriteByte('!')
	}
	if staged {
		run.WriteByte('+')
	}
	if untracked {
		run.WriteByte('?')
	}
	return WorkingTreeStatus{Run: run.String(), Conflicts: conflicts}
}

// Operation detects an in-progress repository operation from the worktree's
// git state directory.
func (c *Client) Operation(worktreePath string) listing.GitOperation {
	gitDir, err := c.run(worktreePath, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return listing.OpNone
	}
	return operationFromGitDir(gitDir)
}

func operationFromGitDir(gitDir string) listing.GitOperation {
	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(gitDir, name))
		return err == nil
	}
	switch {
	case exists("rebase-merge") || exists("rebase-apply"):
		return listing.OpRebase
	case exists("MERGE_HEAD"):
		return listing.OpMerge
	case exists("BISECT_LOG"):
		return listing.OpBisect
	}
	return listing.OpNone
}
