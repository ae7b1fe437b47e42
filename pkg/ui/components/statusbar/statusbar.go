// Package statusbar renders the one-line connection summary at the bottom
// of the review screen.
package statusbar

import (
	"fmt"
	"net/url"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// StatusBarView handles the status bar rendering with Lipgloss
type StatusBarView struct {
	backend  string
	activity string
	hasKey   bool
	messages int
	width    int
}

// NewStatusBarView creates a new status bar view
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{width: 80}
}

// SetBackend shows the admin API host. Schemes and paths are dropped.
func (s *StatusBarView) SetBackend(baseURL string) {
	s.backend = backendHost(baseURL)
}

// SetActivity sets what is currently in flight; empty means idle.
func (s *StatusBarView) SetActivity(activity string) {
	s.activity = strings.TrimSpace(activity)
}

// SetCredential records whether an admin key is available.
func (s *StatusBarView) SetCredential(ok bool) {
	s.hasKey = ok
}

// SetMessageCount sets the number of loaded chat messages.
func (s *StatusBarView) SetMessageCount(n int) {
	s.messages = n
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// Content returns the unstyled status text.
func (s *StatusBarView) Content() string {
	backend := s.backend
	if backend == "" {
		backend = "no backend"
	}
	key := "missing"
	if s.hasKey {
		key = "ok"
	}
	activity := s.activity
	if activity == "" {
		activity = "idle"
	}
	return fmt.Sprintf("[lead_review] %s | key: %s | %d messages | %s", backend, key, s.messages, activity)
}

// Render returns the styled status bar string
func (s *StatusBarView) Render() string {
	content := s.Content()

	// Truncate if too long (ANSI-aware width).
	maxWidth := s.width - 2
	if maxWidth < 10 {
		maxWidth = 10
	}
	if ansi.StringWidth(content) > maxWidth {
		content = ansi.Truncate(content, maxWidth, "...")
	}

	style := statusStyle
	if !s.hasKey {
		style = statusStyleWarn
	}
	styled := style.Render(content)

	// Pad to fill width
	if w := lipgloss.Width(styled); w < s.width {
		styled += strings.Repeat(" ", s.width-w)
	}
	return styled
}

func backendHost(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	// Missing credential
	statusStyleWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#AF005F")).
			Padding(0, 1).
			Bold(true)
)
