package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStatusBarView_Content(t *testing.T) {
	s := NewStatusBarView()
	s.SetBackend("https://admin.example.com/api")
	s.SetCredential(true)
	s.SetMessageCount(2)

	want := "[lead_review] admin.example.com | key: ok | 2 messages | idle"
	if got := s.Content(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	s.SetActivity("fetching history")
	s.SetCredential(false)
	got := s.Content()
	if !strings.Contains(got, "key: missing") || !strings.HasSuffix(got, "fetching history") {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestStatusBarView_RenderFillsWidth(t *testing.T) {
	s := NewStatusBarView()
	s.SetBackend("http://localhost:8000")
	s.SetWidth(120)

	out := s.Render()
	if w := ansi.StringWidth(out); w != 120 {
		t.Errorf("Expected width 120, got %d", w)
	}
	if !strings.Contains(ansi.Strip(out), "localhost:8000") {
		t.Errorf("Expected host in %q", ansi.Strip(out))
	}
}

func TestStatusBarView_RenderTruncates(t *testing.T) {
	s := NewStatusBarView()
	s.SetBackend("http://a-very-long-hostname.internal.example.com:8000")
	s.SetWidth(30)

	out := ansi.Strip(s.Render())
	if ansi.StringWidth(out) > 30 {
		t.Errorf("Expected at most 30 columns, got %d: %q", ansi.StringWidth(out), out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("Expected ellipsis in %q", out)
	}
}

func TestBackendHost(t *testing.T) {
	tests := map[string]string{
		"":                         "",
		"http://localhost:8000":    "localhost:8000",
		"https://x.example.com/a/": "x.example.com",
		"not a url":                "not a url",
	}
	for in, want := range tests {
		if got := backendHost(in); got != want {
			t.Errorf("backendHost(%q) = %q, want %q", in, got, want)
		}
	}
}
