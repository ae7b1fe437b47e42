package leads

import (
	"errors"
	"strings"
)

// Role identifies who sent a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// ChatMessage is one entry of a lead's chat transcript.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

// IsUser reports whether the lead wrote the message.
func (m ChatMessage) IsUser() bool {
	return m.Role == RoleUser
}

// Status is the temperature assigned to a lead.
type Status string

const (
	StatusUnset Status = ""
	StatusHot   Status = "Hot"
	StatusWarm  Status = "Warm"
	StatusCold  Status = "Cold"
)

// Statuses lists the selectable statuses in display order.
func Statuses() []Status {
	return []Status{StatusHot, StatusWarm, StatusCold}
}

// ParseStatus maps user input to a Status, ignoring case. Unknown values
// yield StatusUnset and false.
func ParseStatus(value string) (Status, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return StatusUnset, true
	}
	for _, s := range Statuses() {
		if strings.EqualFold(value, string(s)) {
			return s, true
		}
	}
	return StatusUnset, false
}

var (
	ErrMissingUUID   = errors.New("lead uuid is required")
	ErrMissingStatus = errors.New("lead status is required")
)

// Classification is the payload recorded by a mark-lead call.
type Classification struct {
	UUID    string `json:"uuid"`
	Status  Status `json:"status"`
	Summary string `json:"summary"`
	Contact string `json:"contact"`
}

// Validate enforces that a lead can only be marked with an identifier and a status.
func (c Classification) Validate() error {
	if strings.TrimSpace(c.UUID) == "" {
		return ErrMissingUUID
	}
	if c.Status == StatusUnset {
		return ErrMissingStatus
	}
	return nil
}
