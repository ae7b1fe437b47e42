package auth

import (
	"errors"
	"os"
	"strings"
)

// EnvAdminAPIKey overrides the stored admin key when set.
const EnvAdminAPIKey = "LEAD_REVIEW_ADMIN_API_KEY"

// TokenSource yields the credential attached to authenticated admin calls.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a fixed credential. An empty value means "not configured".
type StaticToken string

func (t StaticToken) Token() (string, error) {
	if strings.TrimSpace(string(t)) == "" {
		return "", ErrNoCredential
	}
	return string(t), nil
}

// EnvToken reads the credential from an environment variable on each call.
type EnvToken string

func (e EnvToken) Token() (string, error) {
	return StaticToken(os.Getenv(string(e))).Token()
}

// Chain tries each source in order and returns the first credential found.
type Chain []TokenSource

func (c Chain) Token() (string, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		token, err := src.Token()
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrNoCredential) {
			return "", err
		}
	}
	return "", ErrNoCredential
}
