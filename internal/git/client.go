// Package git runs the plumbing commands behind a listing and turns their
// porcelain output into rows. Parsing is split into pure functions so the
// formats are testable without a repository.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Client issues git commands against one repository.
type Client struct {
	repoRoot string
}

// NewClient resolves the repository root for dir.
func NewClient(dir string) (*Client, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s", dir)
	}
	return &Client{repoRoot: strings.TrimSpace(string(out))}, nil
}

// RepoRoot returns the resolved repository root.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// run executes git with the given arguments in dir (repo root when empty)
// and returns trimmed stdout.
func (c *Client) run(dir string, args ...string) (string, error) {
	if dir == "" {
		dir = c.repoRoot
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// DefaultBranch returns the local default branch, preferring main over
// master. Falls back to "main" when neither ref exists.
func (c *Client) DefaultBranch() string {
	for _, name := range []string{"main", "master"} {
		if _, err := c.run("", "rev-parse", "--verify", "--quiet", "refs/heads/"+name); err == nil {
			return name
		}
	}
	return "main"
}
