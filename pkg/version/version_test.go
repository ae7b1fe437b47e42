package version

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() {
		Version, Commit = origVersion, origCommit
	})

	Version, Commit = "1.2.0", "none"
	if got := Summary(); got != "1.2.0" {
		t.Errorf("Expected 1.2.0, got %q", got)
	}

	Version, Commit = "", "0123456789abcdef"
	if got := Summary(); got != "dev (0123456)" {
		t.Errorf("Expected dev (0123456), got %q", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	for _, want := range []string{"lead_review version", "commit:", "platform: " + Platform()} {
		if !strings.Contains(info, want) {
			t.Errorf("Expected %q in version info, got:\n%s", want, info)
		}
	}
}
