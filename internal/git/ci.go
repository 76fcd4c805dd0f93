package git

import (
	"encoding/json"
	"os/exec"
)

// CIStatus asks the gh CLI for the latest workflow run on branch and maps
// its state to a single glyph. Any failure (gh missing, no runs, offline)
// yields an empty glyph: the column still renders, per-row cells stay blank.
func (c *Client) CIStatus(branch string) string {
	cmd := exec.Command("gh", "run", "list",
		"--branch", branch, "--limit", "1",
		"--json", "status,conclusion")
	cmd.Dir = c.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	var runs []struct {
		Status     string `json:"status"`
		Conclusion string `json:"conclusion"`
	}
	if err := json.Unmarshal(out, &runs); err != nil || len(runs) == 0 {
		return ""
	}
	return ciGlyph(runs[0].Status, runs[0].Conclusion)
}

func ciGlyph(status, conclusion string) string {
	if status != "completed" {
		return "●"
	}
	switch conclusion {
	case "success":
		return "✓"
	case "failure", "timed_out", "startup_failure":
		return "✗"
	}
	return ""
}
