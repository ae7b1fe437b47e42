package leads

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"Hot", StatusHot, true},
		{"warm", StatusWarm, true},
		{" COLD ", StatusCold, true},
		{"", StatusUnset, true},
		{"Not Responded", StatusUnset, false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClassificationValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Classification
		want error
	}{
		{"complete", Classification{UUID: "abc-123", Status: StatusHot}, nil},
		{"blank uuid", Classification{UUID: "  ", Status: StatusHot}, ErrMissingUUID},
		{"missing status", Classification{UUID: "abc-123"}, ErrMissingStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChatMessageIsUser(t *testing.T) {
	if !(ChatMessage{Role: RoleUser}).IsUser() {
		t.Error("Expected user role to report IsUser")
	}
	if (ChatMessage{Role: RoleAgent}).IsUser() {
		t.Error("Expected agent role not to report IsUser")
	}
}
