package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead_review/pkg/logging"
	"lead_review/pkg/version"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 30 * time.Second

	chatHistoryPath = "/api/admin/chat-history/"
	markLeadPath    = "/api/admin/mark_lead"

	// APIKeyHeader carries the admin credential on write calls.
	APIKeyHeader    = "X-API-KEY"
	RequestIDHeader = "X-Request-ID"

	maxErrorPreview = 200
)

// APIError is a non-2xx answer from the admin backend.
type APIError struct {
	StatusCode int
	// Message is the server-provided "error" field, if any.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("admin API returned status %d", e.StatusCode)
}

type errorBody struct {
	Error string `json:"error"`
}

// Client talks to the lead admin endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: "lead_review/" + version.Summary(),
	}
}

// FetchHistory returns the chat transcript for a lead in backend order.
// A lead with no messages yields an empty, non-nil slice.
func (c *Client) FetchHistory(ctx context.Context, leadID string) ([]ChatMessage, error) {
	endpoint := c.BaseURL + chatHistoryPath + url.PathEscape(leadID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	requestID := c.decorate(req)

	slog.Debug("history_fetch_request", "lead", leadID, "request_id", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Error("history_fetch_send_error", "lead", leadID, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			apiErr.Message = strings.TrimSpace(eb.Error)
		}
		slog.Warn("history_fetch_status",
			"lead", leadID,
			"request_id", requestID,
			"status_code", resp.StatusCode,
			"response_preview", preview(body),
		)
		return nil, apiErr
	}

	var messages []ChatMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		slog.Error("history_fetch_decode_error", "lead", leadID, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}
	if messages == nil {
		messages = []ChatMessage{}
	}

	slog.Debug("history_fetch_done", "lead", leadID, "request_id", requestID, "messages", len(messages))
	return messages, nil
}

// MarkLead records a classification. The response body is never inspected:
// any non-2xx status is reported as a bare *APIError.
func (c *Client) MarkLead(ctx context.Context, apiKey string, lead Classification) error {
	payload, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+markLeadPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, apiKey)
	requestID := c.decorate(req)

	slog.Debug("mark_lead_request",
		"lead", lead.UUID,
		"status", lead.Status,
		"api_key", logging.MaskSecret(apiKey),
		"request_id", requestID,
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Error("mark_lead_send_error", "lead", lead.UUID, "request_id", requestID, "error", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("mark_lead_status", "lead", lead.UUID, "request_id", requestID, "status_code", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode}
	}

	slog.Info("mark_lead_done", "lead", lead.UUID, "status", lead.Status, "request_id", requestID)
	return nil
}

// decorate sets the headers shared by every call and returns the request id.
func (c *Client) decorate(req *http.Request) string {
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return requestID
}

// preview cuts a response body to maxErrorPreview cells for logging,
// never splitting a rune.
func preview(body []byte) string {
	return ansi.Truncate(strings.ToValidUTF8(string(body), "\uFFFD"), maxErrorPreview, "...")
}
