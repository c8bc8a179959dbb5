// Package state persists the CLI's login state between invocations.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "auth.yaml"

	// SessionTTL is how long a login stays valid.
	SessionTTL = 7 * 24 * time.Hour
)

// ErrNoAuth is returned by Load when nobody is logged in.
var ErrNoAuth = errors.New("no saved login")

// Auth is the persisted login of the current CLI user.
type Auth struct {
	UserID     string    `yaml:"user_id"`
	Email      string    `yaml:"email"`
	LoggedInAt time.Time `yaml:"logged_in_at"`
	ExpiresAt  time.Time `yaml:"expires_at"`
}

// NewAuth returns a login for userID valid for SessionTTL from now.
func NewAuth(userID, email string, now time.Time) *Auth {
	now = now.UTC()
	return &Auth{UserID: userID, Email: email, LoggedInAt: now, ExpiresAt: now.Add(SessionTTL)}
}

// Valid reports whether the login has not expired at now.
func (a *Auth) Valid(now time.Time) bool {
	return a != nil && a.UserID != "" && now.Before(a.ExpiresAt)
}

// Store reads and writes the auth file inside a state directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load returns the saved login. Missing and expired logins both return
// ErrNoAuth; an expired file is removed.
func (s *Store) Load(now time.Time) (*Auth, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, fmt.Errorf("loading auth state: %w", err)
	}

	var a Auth
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing auth state %q: %w", s.Path(), err)
	}
	if !a.Valid(now) {
		_ = s.Clear()
		return nil, ErrNoAuth
	}
	return &a, nil
}

// IsAuthenticated reports whether a valid login is saved. Unreadable state
// counts as logged out.
func (s *Store) IsAuthenticated(now time.Time) bool {
	_, err := s.Load(now)
	return err == nil
}

// Save writes the login atomically with owner-only permissions.
func (s *Store) Save(a *Auth) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling auth state: %w", err)
	}

	dest := s.Path()
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing temp auth file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming auth file: %w", err)
	}
	return nil
}

// Clear removes the saved login. Clearing an absent login is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing auth state: %w", err)
	}
	return nil
}
