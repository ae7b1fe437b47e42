package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// AdminAPIKey is the credential name the lead marker reads.
const AdminAPIKey = "admin_api_key"

// ErrNoCredential is returned when no usable credential is stored.
var ErrNoCredential = errors.New("no credential stored")

// StoredCredential is a single named secret.
type StoredCredential struct {
	Name    string    `json:"name"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// credentialFile is the on-disk format for storing credentials.
type credentialFile struct {
	Credentials map[string]StoredCredential `json:"credentials"`
}

// Store persists named credentials in a JSON file readable only by the owner.
type Store struct {
	path string
	mu   sync.RWMutex
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default path for auth.json.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lead_review", "auth.json")
	}
	return filepath.Join(homeDir, ".lead_review", "auth.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save stores a credential under name, replacing any previous value.
func (s *Store) Save(name, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("refusing to store empty credential %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	file.Credentials[name] = StoredCredential{
		Name:    name,
		Token:   token,
		SavedAt: time.Now().UTC(),
	}

	slog.Debug("credential_save", "name", name, "path", s.path)
	return s.write(file)
}

// Load retrieves a credential by name.
func (s *Store) Load(name string) (*StoredCredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		slog.Debug("credential_load_error", "name", name, "error", err)
		return nil, err
	}

	cred, ok := file.Credentials[name]
	if !ok || strings.TrimSpace(cred.Token) == "" {
		slog.Debug("credential_load_missing", "name", name)
		return nil, fmt.Errorf("%w: %s", ErrNoCredential, name)
	}

	return &cred, nil
}

// Delete removes a credential. Deleting a missing credential is not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	delete(file.Credentials, name)

	slog.Debug("credential_delete", "name", name, "path", s.path)
	return s.write(file)
}

// Has reports whether a credential exists for name.
func (s *Store) Has(name string) bool {
	_, err := s.Load(name)
	return err == nil
}

// Token implements TokenSource by reading the admin API key on every call.
func (s *Store) Token() (string, error) {
	cred, err := s.Load(AdminAPIKey)
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}

func (s *Store) read() (*credentialFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &credentialFile{Credentials: make(map[string]StoredCredential)}, nil
		}
		return nil, fmt.Errorf("failed to read auth file: %w", err)
	}

	var file credentialFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse auth file: %w", err)
	}
	if file.Credentials == nil {
		file.Credentials = make(map[string]StoredCredential)
	}
	return &file, nil
}

func (s *Store) write(file *credentialFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create auth directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}

	return nil
}
