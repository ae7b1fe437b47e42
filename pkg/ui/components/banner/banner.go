// Package banner implements auto-dismissing status messages.
//
// Every Set starts a new generation. The expiry tick carries the generation
// it was scheduled for, so a tick that outlives its message (the banner was
// dismissed or re-set) no longer matches and is ignored.
package banner

import (
	"strings"
	"sync/atomic"
	"time"

	"lead_review/pkg/ui/components/utils"
	"lead_review/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DefaultTimeout is how long a banner stays visible.
const DefaultTimeout = 5 * time.Second

// Kind selects the banner's styling.
type Kind int

const (
	KindError Kind = iota
	KindSuccess
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ExpiredMsg is delivered when a banner's display window ends.
type ExpiredMsg struct {
	ID         int
	Generation int
}

// Banner is a single dismissible message slot.
type Banner struct {
	id         int
	generation int
	kind       Kind
	text       string
	timeout    time.Duration
}

// New creates an empty banner. A non-positive timeout disables auto-dismiss.
func New(kind Kind, timeout time.Duration) *Banner {
	return &Banner{
		id:      nextID(),
		kind:    kind,
		timeout: timeout,
	}
}

// Set shows text and schedules its expiry, superseding any pending one.
// Control characters are stripped first; text that ends up empty is the
// same as Dismiss.
func (b *Banner) Set(text string) tea.Cmd {
	text = strings.TrimSpace(utils.Sanitize(text))
	if text == "" {
		b.Dismiss()
		return nil
	}
	b.generation++
	b.text = text
	if b.timeout <= 0 {
		return nil
	}
	id, gen := b.id, b.generation
	return tea.Tick(b.timeout, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id, Generation: gen}
	})
}

// Dismiss clears the message and invalidates its pending expiry.
func (b *Banner) Dismiss() {
	if b.text == "" {
		return
	}
	b.generation++
	b.text = ""
}

// Update clears the banner if msg is its current expiry. It reports whether
// the message belonged to this banner's live generation.
func (b *Banner) Update(msg ExpiredMsg) bool {
	if msg.ID != b.id || msg.Generation != b.generation || b.text == "" {
		return false
	}
	b.text = ""
	return true
}

// Text returns the visible message, or "" when hidden.
func (b *Banner) Text() string {
	return b.text
}

// Visible reports whether a message is showing.
func (b *Banner) Visible() bool {
	return b.text != ""
}

// View renders the banner across width columns.
func (b *Banner) View(width int) string {
	if b.text == "" {
		return ""
	}

	style := styles.ErrorBannerStyle
	icon := "✗ "
	if b.kind == KindSuccess {
		style = styles.SuccessBannerStyle
		icon = "✓ "
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(icon + b.text + "  (esc to dismiss)")
}

// Height returns the rendered height, 0 when hidden.
func (b *Banner) Height(width int) int {
	if !b.Visible() {
		return 0
	}
	return lipgloss.Height(b.View(width))
}
