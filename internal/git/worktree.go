package git

import (
	"bufio"
	"strings"
)

// Worktree is one entry of `git worktree list --porcelain`. The first entry
// is always the main worktree.
type Worktree struct {
	Path     string
	Branch   string
	Head     string
	Primary  bool
	Detached bool
}

// Worktrees lists all worktrees of the repository.
func (c *Client) Worktrees() ([]Worktree, error) {
	out, err := c.run("", "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktrees(out), nil
}

// parseWorktrees parses the porcelain format: one block per worktree,
// blocks separated by blank lines, attributes one per line.
func parseWorktrees(out string) []Worktree {
	var worktrees []Worktree
	var current Worktree

	flush := func() {
		if current.Path != "" {
			current.Primary = len(worktrees) == 0
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
	}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Detached = true
		}
	}
	flush()
	return worktrees
}

// Branches lists local branch names.
func (c *Client) Branches() ([]string, error) {
	out, err := c.run("", "for-each-ref", "refs/heads", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
