package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/justinpbarnett/treeline/internal/listing"
)

// Commit is the tip commit of a ref.
type Commit struct {
	Hash    string
	Time    time.Time
	Subject string
}

// CommitInfo reads the tip commit of ref. NUL separators keep subjects with
// embedded punctuation intact.
func (c *Client) CommitInfo(ref string) (Commit, error) {
	out, err := c.run("", "log", "-1", "--format=%H%x00%ct%x00%s", ref)
	if err != nil {
		return Commit{}, err
	}
	return parseCommit(out)
}

func parseCommit(out string) (Commit, error) {
	parts := strings.SplitN(out, "\x00", 3)
	if len(parts) != 3 {
		return Commit{}, fmt.Errorf("unexpected log output: %q", out)
	}
	epoch, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Commit{}, fmt.Errorf("commit time %q: %w", parts[1], err)
	}
	return Commit{
		Hash:    parts[0],
		Time:    time.Unix(epoch, 0),
		Subject: parts[2],
	}, nil
}

// AheadBehind counts commits on branch not on base, and vice versa.
func (c *Client) AheadBehind(base, branch string) (listing.AheadBehind, error) {
	out, err := c.run("", "rev-list", "--left-right", "--count", branch+"..."+base)
	if err != nil {
		return listing.AheadBehind{}, err
	}
	return parseAheadBehind(out)
}

// parseAheadBehind parses the "left<TAB>right" count pair.
func parseAheadBehind(out string) (listing.AheadBehind, error) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return listing.AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return listing.AheadBehind{}, fmt.Errorf("ahead count %q: %w", fields[0], err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return listing.AheadBehind{}, fmt.Errorf("behind count %q: %w", fields[1], err)
	}
	return listing.AheadBehind{Ahead: ahead, Behind: behind}, nil
}

// Upstream reads the tracking relationship of branch. A branch without an
// upstream returns the zero value and no error.
func (c *Client) Upstream(branch string) (listing.Upstream, error) {
	remote, err := c.run("", "rev-parse", "--abbrev-ref", branch+"@{upstream}")
	if err != nil {
		return listing.Upstream{}, nil
	}

	out, err := c.run("", "rev-list", "--left-right", "--count", branch+"..."+branch+"@{upstream}")
	if err != nil {
		return listing.Upstream{}, err
	}
	counts, err := parseAheadBehind(out)
	if err != nil {
		return listing.Upstream{}, err
	}

	if i := strings.IndexByte(remote, '/'); i > 0 {
		remote = remote[:i]
	}
	return listing.Upstream{
		Remote: remote,
		Ahead:  counts.Ahead,
		Behind: counts.Behind,
	}, nil
}
