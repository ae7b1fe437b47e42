package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"lead_review/pkg/leads"
	"lead_review/pkg/ui/components/utils"

	tea "charm.land/bubbletea/v2"
)

// Banner texts shown by the review flow.
const (
	MsgEnterUUID       = "Please enter a lead UUID"
	MsgNoHistory       = "No chat history found for this UUID"
	MsgHistoryLoaded   = "Chat history loaded successfully"
	MsgFetchFailed     = "Failed to fetch chat history"
	MsgFetchFailedLong = "Failed to fetch chat history. Please try again."
	MsgLeadMarked      = "Lead marked successfully"
	MsgMarkFailed      = "Failed to mark lead. Please try again."
)

type historyResultMsg struct {
	leadID   string
	messages []leads.ChatMessage
	err      error
}

type markResultMsg struct {
	leadID string
	err    error
}

// startFetch validates the identifier and issues the history request.
func (m Model) startFetch() (Model, tea.Cmd) {
	if m.loadingHistory {
		return m, nil
	}

	leadID := strings.TrimSpace(m.uuidInput.Value())
	if leadID == "" {
		return m, m.errBanner.Set(MsgEnterUUID)
	}

	m.loadingHistory = true
	m.errBanner.Dismiss()
	slog.Info("history_fetch_start", "lead", leadID)
	return m, fetchHistoryCmd(m.api, leadID)
}

func fetchHistoryCmd(api LeadsAPI, leadID string) tea.Cmd {
	return func() tea.Msg {
		messages, err := api.FetchHistory(context.Background(), leadID)
		return historyResultMsg{leadID: leadID, messages: messages, err: err}
	}
}

// applyHistory replaces the transcript with the result of a fetch.
func (m Model) applyHistory(msg historyResultMsg) (Model, tea.Cmd) {
	m.loadingHistory = false

	if msg.err != nil {
		m.setHistory(nil)
		slog.Warn("history_fetch_failed", "lead", msg.leadID, "error", msg.err)
		return m, m.errBanner.Set(fetchErrorText(msg.err))
	}

	if len(msg.messages) == 0 {
		m.setHistory(nil)
		slog.Info("history_fetch_empty", "lead", msg.leadID)
		return m, m.errBanner.Set(MsgNoHistory)
	}

	m.setHistory(msg.messages)
	slog.Info("history_fetch_loaded", "lead", msg.leadID, "messages", len(msg.messages))
	return m, m.successBanner.Set(MsgHistoryLoaded)
}

func (m *Model) setHistory(messages []leads.ChatMessage) {
	if len(messages) == 0 {
		m.transcript.Clear()
		return
	}
	m.transcript.SetMessages(messages)
}

// fetchErrorText prefers the server's own explanation, stripped of
// terminal control sequences.
func fetchErrorText(err error) string {
	var apiErr *leads.APIError
	if errors.As(err, &apiErr) {
		if text := strings.TrimSpace(utils.Sanitize(apiErr.Message)); text != "" {
			return text
		}
		return MsgFetchFailed
	}
	return MsgFetchFailedLong
}

func (m Model) classification() leads.Classification {
	return leads.Classification{
		UUID:    strings.TrimSpace(m.uuidInput.Value()),
		Status:  m.status.Value(),
		Summary: m.summaryInput.Value(),
		Contact: m.contactInput.Value(),
	}
}

// canMark reports whether the mark control is enabled.
func (m Model) canMark() bool {
	return !m.markingLead && m.classification().Validate() == nil
}

// startMark submits the classification with the stored admin key.
func (m Model) startMark() (Model, tea.Cmd) {
	if !m.canMark() {
		return m, nil
	}

	lead := m.classification()

	apiKey, err := m.token()
	m.statusBar.SetCredential(err == nil)
	if err != nil {
		slog.Warn("mark_lead_no_credential", "lead", lead.UUID, "error", err)
		return m, m.errBanner.Set(MsgMarkFailed)
	}

	m.markingLead = true
	slog.Info("mark_lead_start", "lead", lead.UUID, "status", lead.Status)
	return m, markLeadCmd(m.api, apiKey, lead)
}

func (m Model) token() (string, error) {
	if m.creds == nil {
		return "", errors.New("no credential source configured")
	}
	token, err := m.creds.Token()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(token) == "" {
		return "", errors.New("empty credential")
	}
	return token, nil
}

func markLeadCmd(api LeadsAPI, apiKey string, lead leads.Classification) tea.Cmd {
	return func() tea.Msg {
		err := api.MarkLead(context.Background(), apiKey, lead)
		return markResultMsg{leadID: lead.UUID, err: err}
	}
}

// applyMark reports the outcome of a mark. The form is left as submitted.
func (m Model) applyMark(msg markResultMsg) (Model, tea.Cmd) {
	m.markingLead = false

	if msg.err != nil {
		slog.Warn("mark_lead_failed", "lead", msg.leadID, "error", msg.err)
		return m, m.errBanner.Set(MsgMarkFailed)
	}
	return m, m.successBanner.Set(MsgLeadMarked)
}
