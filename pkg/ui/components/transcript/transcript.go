package transcript

import (
	"fmt"
	"os"
	"strings"

	"lead_review/pkg/leads"
	"lead_review/pkg/ui/components/utils"
	"lead_review/pkg/ui/styles"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	userLabel  = "User"
	agentLabel = "Agent"

	// EmptyText is shown when no messages are loaded.
	EmptyText = "No chat history found."
)

// Transcript shows a lead's chat history in a scrollable panel.
type Transcript struct {
	viewport viewport.Model
	messages []leads.ChatMessage
	width    int
	height   int
}

// New creates an empty transcript.
func New() *Transcript {
	t := &Transcript{viewport: viewport.New()}
	t.refresh()
	return t
}

// SetSize sets the inner content dimensions.
func (t *Transcript) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t.width = width
	t.height = height
	t.viewport.SetWidth(width)
	t.viewport.SetHeight(height)
	t.refresh()
}

// SetMessages replaces the whole transcript and scrolls to the first message.
func (t *Transcript) SetMessages(messages []leads.ChatMessage) {
	t.messages = append([]leads.ChatMessage(nil), messages...)
	t.refresh()
	t.viewport.GotoTop()
}

// Clear drops every message.
func (t *Transcript) Clear() {
	t.messages = nil
	t.refresh()
	t.viewport.GotoTop()
}

// Len returns the number of displayed messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

func (t *Transcript) ScrollUp()   { t.viewport.ScrollUp(1) }
func (t *Transcript) ScrollDown() { t.viewport.ScrollDown(1) }
func (t *Transcript) PageUp()     { t.viewport.PageUp() }
func (t *Transcript) PageDown()   { t.viewport.PageDown() }

// PlainText returns the transcript as "Label: message" lines without styling.
func (t *Transcript) PlainText() string {
	lines := make([]string, 0, len(t.messages))
	for _, msg := range t.messages {
		lines = append(lines, label(msg)+": "+msg.Message)
	}
	return strings.Join(lines, "\n")
}

// CopyCmd copies the plain transcript to the clipboard through OSC 52.
func (t *Transcript) CopyCmd() tea.Cmd {
	if len(t.messages) == 0 {
		return nil
	}
	text := t.PlainText()
	return func() tea.Msg {
		_, _ = fmt.Fprint(os.Stdout, osc52.New(text))
		return CopiedMsg{Lines: strings.Count(text, "\n") + 1}
	}
}

// CopiedMsg reports a finished clipboard copy.
type CopiedMsg struct {
	Lines int
}

// View renders the visible part of the transcript.
func (t *Transcript) View() string {
	return t.viewport.View()
}

func (t *Transcript) refresh() {
	t.viewport.SetContent(Render(t.messages, t.width))
}

// Render lays out messages for a panel width columns wide. Lead messages are
// right-aligned and agent messages left-aligned, as in the web console.
func Render(messages []leads.ChatMessage, width int) string {
	if len(messages) == 0 {
		return styles.TextMutedStyle.Render(EmptyText)
	}

	var lines []string
	for _, msg := range messages {
		style := styles.AgentMessageStyle
		if msg.IsUser() {
			style = styles.UserMessageStyle
		}
		for _, line := range Layout(msg, width) {
			lines = append(lines, style.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// Layout wraps a single message to width and applies its alignment.
func Layout(msg leads.ChatMessage, width int) []string {
	text := label(msg) + ": " + utils.Sanitize(msg.Message)
	if width <= 0 {
		return []string{text}
	}

	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	out := make([]string, 0, len(wrapped))
	for _, line := range wrapped {
		line = strings.TrimRight(line, " ")
		line = utils.TruncateToWidth(line, width)
		if msg.IsUser() {
			line = utils.PadLeft(line, width)
		}
		out = append(out, line)
	}
	return out
}

func label(msg leads.ChatMessage) string {
	if msg.IsUser() {
		return userLabel
	}
	return agentLabel
}
