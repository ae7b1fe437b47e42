package transcript

import (
	"fmt"
	"strings"
	"testing"

	"lead_review/pkg/leads"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"
)

func sampleMessages() []leads.ChatMessage {
	return []leads.ChatMessage{
		{Role: leads.RoleUser, Message: "Hi"},
		{Role: leads.RoleAgent, Message: "Hello"},
		{Role: leads.RoleUser, Message: "Can I get pricing?"},
	}
}

func TestRenderGolden(t *testing.T) {
	out := ansi.Strip(Render(sampleMessages(), 30))
	golden.RequireEqual(t, []byte(out))
}

func TestRender_Empty(t *testing.T) {
	out := ansi.Strip(Render(nil, 30))
	if out != EmptyText {
		t.Errorf("Expected %q, got %q", EmptyText, out)
	}
}

func TestLayout_WrapsToWidth(t *testing.T) {
	msg := leads.ChatMessage{Role: leads.RoleAgent, Message: "hello there my friend how are you doing today"}
	lines := Layout(msg, 20)
	if len(lines) < 2 {
		t.Fatalf("Expected wrapped output, got %q", lines)
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("Line %q is %d wide, want <= 20", line, w)
		}
	}
	if !strings.HasPrefix(lines[0], "Agent: ") {
		t.Errorf("Expected agent label on first line, got %q", lines[0])
	}
}

func TestLayout_UserRightAligned(t *testing.T) {
	lines := Layout(leads.ChatMessage{Role: leads.RoleUser, Message: "ok"}, 12)
	if len(lines) != 1 {
		t.Fatalf("Expected one line, got %q", lines)
	}
	if lines[0] != "    User: ok" {
		t.Errorf("Expected right-aligned line, got %q", lines[0])
	}
}

func TestLayout_StripsControlCharacters(t *testing.T) {
	lines := Layout(leads.ChatMessage{Role: leads.RoleAgent, Message: "a\x1b[2Jb\nc"}, 0)
	if len(lines) != 1 || strings.ContainsRune(lines[0], 0x1b) {
		t.Errorf("Expected a single sanitized line, got %q", lines)
	}
	if lines[0] != "Agent: a[2Jb c" {
		t.Errorf("Unexpected sanitized text %q", lines[0])
	}

	lines = Layout(leads.ChatMessage{Role: leads.RoleAgent, Message: "hi\u009b2J\u009d0;pwned\u009c"}, 80)
	for _, r := range lines[0] {
		if r >= 0x80 && r <= 0x9f {
			t.Fatalf("Expected C1 controls removed, got %q", lines[0])
		}
	}
	if lines[0] != "Agent: hi2J0;pwned" {
		t.Errorf("Unexpected sanitized text %q", lines[0])
	}
}

func TestTranscript_SetMessagesKeepsOrder(t *testing.T) {
	tr := New()
	tr.SetSize(40, 10)

	msgs := sampleMessages()
	tr.SetMessages(msgs)
	msgs[0].Message = "mutated"

	if tr.Len() != 3 {
		t.Fatalf("Expected 3 messages, got %d", tr.Len())
	}
	want := "User: Hi\nAgent: Hello\nUser: Can I get pricing?"
	if got := tr.PlainText(); got != want {
		t.Errorf("Unexpected order or aliasing: %q", got)
	}

	view := ansi.Strip(tr.View())
	if strings.Index(view, "User: Hi") > strings.Index(view, "Agent: Hello") {
		t.Errorf("Expected messages in server order, got:\n%s", view)
	}
}

func TestTranscript_Clear(t *testing.T) {
	tr := New()
	tr.SetSize(40, 5)
	tr.SetMessages(sampleMessages())
	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("Expected no messages after Clear, got %d", tr.Len())
	}
	if !strings.Contains(ansi.Strip(tr.View()), EmptyText) {
		t.Errorf("Expected empty text after Clear, got %q", ansi.Strip(tr.View()))
	}
}

func TestTranscript_PlainText(t *testing.T) {
	tr := New()
	tr.SetMessages(sampleMessages()[:2])
	if got := tr.PlainText(); got != "User: Hi\nAgent: Hello" {
		t.Errorf("Unexpected plain text %q", got)
	}
}

func TestTranscript_CopyCmdEmpty(t *testing.T) {
	tr := New()
	if tr.CopyCmd() != nil {
		t.Error("Expected no copy command for an empty transcript")
	}
	tr.SetMessages(sampleMessages())
	if tr.CopyCmd() == nil {
		t.Error("Expected copy command once messages are loaded")
	}
}

func TestTranscript_Scroll(t *testing.T) {
	tr := New()
	tr.SetSize(20, 2)

	var msgs []leads.ChatMessage
	for i := 0; i < 10; i++ {
		msgs = append(msgs, leads.ChatMessage{Role: leads.RoleAgent, Message: fmt.Sprintf("line %d", i)})
	}
	tr.SetMessages(msgs)

	top := tr.View()
	tr.PageDown()
	tr.ScrollDown()
	if tr.View() == top {
		t.Error("Expected scrolling down to change the visible lines")
	}
	tr.PageUp()
	tr.ScrollUp()
	tr.ScrollUp()
	if tr.View() != top {
		t.Error("Expected scrolling back up to return to the top")
	}
}
