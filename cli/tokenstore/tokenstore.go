// Package tokenstore provides encrypted file storage for Slack API tokens.
package tokenstore

import (
	"os"
	"path/filepath"
	"runtime"
)

// Store defines the interface for token storage.
type Store interface {
	// Set stores a token under a profile name.
	Set(profile, token string) error
	// Get retrieves a token by profile name. Returns error if not found.
	Get(profile string) (string, error)
	// Delete removes a token by profile name.
	Delete(profile string) error
	// List returns all stored profile names.
	List() ([]string, error)
}

// ErrTokenNotFound is returned when a requested profile does not exist.
type ErrTokenNotFound struct {
	Profile string
}

func (e *ErrTokenNotFound) Error() string {
	return "token not found for profile: " + e.Profile
}

// DefaultStorePath returns the default token store file path.
// - macOS/Linux: ~/.slacktime/tokens.enc
// - Windows: %USERPROFILE%\.slacktime\tokens.enc
func DefaultStorePath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "tokens.enc"
	}

	return filepath.Join(homeDir, ".slacktime", "tokens.enc")
}

// NewStore creates a token store using file-based encrypted storage.
func NewStore() (Store, error) {
	return NewFileStore(DefaultStorePath())
}
