package git

import "testing"

func TestParseNumstat(t *testing.T) {
	out := "10\t2\tmain.go\n3\t0\tutil.go\n-\t-\tlogo.png"
	pair := parseNumstat(out)

	if pair.Added != 13 || pair.Removed != 2 {
		t.Errorf("got +%d -%d, want +13 -2", pair.Added, pair.Removed)
	}
}

func TestParseNumstatEmpty(t *testing.T) {
	if pair := parseNumstat(""); !pair.IsZero() {
		t.Errorf("empty numstat: got +%d -%d", pair.Added, pair.Removed)
	}
}

func TestParseNumstatTabsInPath(t *testing.T) {
	pair := parseNumstat("1\t1\ta\tb.go")

	if pair.Added != 1 || pair.Removed != 1 {
		t.Errorf("got +%d -%d, want +1 -1", pair.Added, pair.Removed)
	}
}
