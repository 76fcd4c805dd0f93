package git

import (
	"testing"
	"time"
)

func TestParseCommit(t *testing.T) {
	out := "abc123\x001700000000\x00Fix layout: align sub-parts"
	commit, err := parseCommit(out)
	if err != nil {
		t.Fatalf("parseCommit: %v", err)
	}

	if commit.Hash != "abc123" {
		t.Errorf("hash: got %q", commit.Hash)
	}
	if !commit.Time.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("time: got %v", commit.Time)
	}
	if commit.Subject != "Fix layout: align sub-parts" {
		t.Errorf("subject: got %q", commit.Subject)
	}
}

func TestParseCommitMalformed(t *testing.T) {
	if _, err := parseCommit("just-a-hash"); err == nil {
		t.Error("expected error for malformed log output")
	}
	if _, err := parseCommit("h\x00not-a-number\x00msg"); err == nil {
		t.Error("expected error for non-numeric timestamp")
	}
}

func TestParseAheadBehind(t *testing.T) {
	ab, err := parseAheadBehind("3\t7")
	if err != nil {
		t.Fatalf("parseAheadBehind: %v", err)
	}
	if ab.Ahead != 3 || ab.Behind != 7 {
		t.Errorf("got ahead=%d behind=%d, want 3/7", ab.Ahead, ab.Behind)
	}
}

func TestParseAheadBehindMalformed(t *testing.T) {
	for _, out := range []string{"", "5", "a\tb"} {
		if _, err := parseAheadBehind(out); err == nil {
			t.Errorf("expected error for %q", out)
		}
	}
}
