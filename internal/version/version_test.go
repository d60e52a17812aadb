package version

import (
	"strings"
	"testing"
)

func TestInfoPrefersLinkerValues(t *testing.T) {
	t.Cleanup(func() {
		Version, Commit, Date = "dev", "none", "unknown"
	})
	Version, Commit, Date = "v1.2.0", "abc1234", "2026-10-18"

	if got, want := Info(), "v1.2.0 (commit abc1234, built 2026-10-18)"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}

func TestInfoDefaults(t *testing.T) {
	if got := Info(); !strings.HasPrefix(got, "dev (commit ") {
		t.Fatalf("Info() = %q, want dev prefix", got)
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("shortRevision = %q, want %q", got, "0123456789ab")
	}
	if got := shortRevision("abc"); got != "abc" {
		t.Fatalf("shortRevision = %q, want %q", got, "abc")
	}
}
