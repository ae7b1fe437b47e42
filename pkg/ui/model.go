package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lead_review/pkg/auth"
	"lead_review/pkg/leads"
	"lead_review/pkg/ui/components/banner"
	"lead_review/pkg/ui/components/picker"
	"lead_review/pkg/ui/components/statusbar"
	"lead_review/pkg/ui/components/transcript"
	"lead_review/pkg/ui/components/utils"
	"lead_review/pkg/ui/styles"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// LeadsAPI is the backend used by the review screen.
type LeadsAPI interface {
	FetchHistory(ctx context.Context, leadID string) ([]leads.ChatMessage, error)
	MarkLead(ctx context.Context, apiKey string, lead leads.Classification) error
}

// Options configures a review Model.
type Options struct {
	API         LeadsAPI
	Credentials auth.TokenSource
	// BaseURL is only displayed in the status bar.
	BaseURL string
	// BannerTimeout defaults to banner.DefaultTimeout when zero.
	BannerTimeout time.Duration
	// LeadID pre-fills the identifier and fetches its history on start.
	LeadID string
	// Status pre-selects the classification.
	Status leads.Status
}

type focusField int

const (
	focusUUID focusField = iota
	focusFetch
	focusStatus
	focusSummary
	focusContact
	focusMark
	focusCount
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows taken by everything except banners and the transcript body
	chromeRows        = 14
	minTranscriptRows = 3

	footerHelp = "tab focus • enter activate • ←/→ status • pgup/pgdn scroll • ctrl+y copy • esc dismiss • ctrl+c quit"
)

// Model represents the Bubble Tea application state
type Model struct {
	api   LeadsAPI
	creds auth.TokenSource

	// Form
	uuidInput    textinput.Model
	summaryInput textinput.Model
	contactInput textinput.Model
	status       *picker.StatusPicker
	focus        focusField

	// Chat history, replaced wholesale on every fetch result
	transcript *transcript.Transcript

	loadingHistory bool
	markingLead    bool

	errBanner     *banner.Banner
	successBanner *banner.Banner

	statusBar *statusbar.StatusBarView
	autoFetch bool

	width  int
	height int
	ready  bool
}

// NewModel creates the lead review screen.
func NewModel(opts Options) Model {
	timeout := opts.BannerTimeout
	if timeout == 0 {
		timeout = banner.DefaultTimeout
	}

	m := Model{
		api:           opts.API,
		creds:         opts.Credentials,
		uuidInput:     newInput("lead uuid", 64),
		summaryInput:  newInput("short summary of the conversation", 500),
		contactInput:  newInput("email or phone", 200),
		status:        picker.NewStatusPicker(),
		transcript:    transcript.New(),
		errBanner:     banner.New(banner.KindError, timeout),
		successBanner: banner.New(banner.KindSuccess, timeout),
		statusBar:     statusbar.NewStatusBarView(),
		width:         defaultWidth,
		height:        defaultHeight,
	}

	if id := strings.TrimSpace(opts.LeadID); id != "" {
		m.uuidInput.SetValue(id)
		m.autoFetch = true
	}
	m.status.SetValue(opts.Status)
	m.statusBar.SetBackend(opts.BaseURL)
	m.refreshCredential()
	m.uuidInput.Focus()
	m.layout()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

type fetchRequestMsg struct{}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	if m.autoFetch {
		return func() tea.Msg { return fetchRequestMsg{} }
	}
	return nil
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		return m.updateFocusedInput(msg)

	case fetchRequestMsg:
		return m.startFetch()

	case historyResultMsg:
		return m.applyHistory(msg)

	case markResultMsg:
		return m.applyMark(msg)

	case banner.ExpiredMsg:
		if !m.errBanner.Update(msg) {
			m.successBanner.Update(msg)
		}
		return m, nil

	case picker.StatusSelectMsg:
		slog.Debug("status_selected", "status", msg.Status)
		return m, nil

	case transcript.CopiedMsg:
		return m, m.successBanner.Set(fmt.Sprintf("Copied %d lines to clipboard", msg.Lines))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.status.IsOpen() {
		return m, m.status.Update(msg)
	}

	switch key {
	case "esc":
		if m.errBanner.Visible() {
			m.errBanner.Dismiss()
		} else {
			m.successBanner.Dismiss()
		}
		return m, nil
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "pgup":
		m.transcript.PageUp()
		return m, nil
	case "pgdown":
		m.transcript.PageDown()
		return m, nil
	case "ctrl+up":
		m.transcript.ScrollUp()
		return m, nil
	case "ctrl+down":
		m.transcript.ScrollDown()
		return m, nil
	case "ctrl+y":
		return m, m.transcript.CopyCmd()
	case "enter":
		return m.activate()
	}

	switch m.focus {
	case focusStatus:
		switch key {
		case "left", "h":
			m.status.Cycle(-1)
		case "right", "l":
			m.status.Cycle(1)
		case "space":
			m.status.Open()
		}
		return m, nil
	case focusFetch, focusMark:
		if key == "space" {
			return m.activate()
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// activate runs the action bound to the focused control.
func (m Model) activate() (Model, tea.Cmd) {
	switch m.focus {
	case focusUUID, focusFetch:
		return m.startFetch()
	case focusStatus:
		m.status.Open()
		return m, nil
	case focusSummary, focusContact:
		return m.setFocus(m.focus + 1)
	case focusMark:
		return m.startMark()
	}
	return m, nil
}

func (m Model) setFocus(f focusField) (Model, tea.Cmd) {
	m.focus = f
	m.uuidInput.Blur()
	m.summaryInput.Blur()
	m.contactInput.Blur()

	if input := m.focusedInput(); input != nil {
		return m, input.Focus()
	}
	return m, nil
}

func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case focusUUID:
		return &m.uuidInput
	case focusSummary:
		return &m.summaryInput
	case focusContact:
		return &m.contactInput
	}
	return nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	input := m.focusedInput()
	if input == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// layout sizes the transcript to whatever the form and banners leave free.
func (m *Model) layout() {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	rows := height - chromeRows - m.errBanner.Height(width) - m.successBanner.Height(width)
	if rows < minTranscriptRows {
		rows = minTranscriptRows
	}
	m.transcript.SetSize(width-4, rows)
	m.status.SetWidth(width)

	m.statusBar.SetWidth(width)
	m.statusBar.SetMessageCount(m.transcript.Len())
	m.statusBar.SetActivity(m.activity())
}

func (m Model) activity() string {
	switch {
	case m.loadingHistory && m.markingLead:
		return "fetching history, marking lead"
	case m.loadingHistory:
		return "fetching history"
	case m.markingLead:
		return "marking lead"
	}
	return ""
}

// refreshCredential updates the key indicator without exposing the key.
func (m *Model) refreshCredential() {
	_, err := m.token()
	m.statusBar.SetCredential(err == nil)
}

// View renders the program's UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render returns the screen as a string.
func (m Model) Render() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Lead Chat Review"))
	b.WriteString("\n")
	if m.errBanner.Visible() {
		b.WriteString(m.errBanner.View(width))
		b.WriteString("\n")
	}
	if m.successBanner.Visible() {
		b.WriteString(m.successBanner.View(width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fetchLabel := "Fetch Chat"
	if m.loadingHistory {
		fetchLabel = "Fetching..."
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.label("Lead UUID", focusUUID),
		m.uuidInput.View(),
		"  ",
		m.button(fetchLabel, focusFetch, !m.loadingHistory),
	))
	b.WriteString("\n\n")

	box := styles.TranscriptBoxStyle.Width(width)
	b.WriteString(box.Render(m.transcript.View()))
	b.WriteString("\n\n")

	b.WriteString(m.label("Status", focusStatus) + m.status.ViewField(m.focus == focusStatus))
	b.WriteString("\n")
	if m.status.IsOpen() {
		b.WriteString(m.status.View())
		b.WriteString("\n")
	}
	b.WriteString(m.label("Summary", focusSummary) + m.summaryInput.View())
	b.WriteString("\n")
	b.WriteString(m.label("Contact", focusContact) + m.contactInput.View())
	b.WriteString("\n")

	markLabel := "Mark Lead"
	if m.markingLead {
		markLabel = "Marking..."
	}
	b.WriteString(styles.LabelStyle.Render("") + m.button(markLabel, focusMark, m.canMark()))
	b.WriteString("\n\n")

	b.WriteString(styles.FooterStyle.Render(utils.TruncateToWidth(footerHelp, width)))
	b.WriteString("\n")
	b.WriteString(m.statusBar.Render())
	return b.String()
}

func (m Model) label(text string, f focusField) string {
	if m.focus == f {
		return styles.FocusedLabelStyle.Render(text)
	}
	return styles.LabelStyle.Render(text)
}

func (m Model) button(text string, f focusField, enabled bool) string {
	switch {
	case !enabled:
		return styles.ButtonDisabledStyle.Render(text)
	case m.focus == f:
		return styles.ButtonFocusedStyle.Render(text)
	default:
		return styles.ButtonStyle.Render(text)
	}
}
