// Package session holds the authenticated vendor identity. Exactly one
// vendor is active at a time; a new login overwrites the prior one. The
// record survives page-reload equivalents (new CLI invocations) by being
// persisted as a single JSON blob under the config dir.
package session

import (
	"encoding/json"
	"os"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
)

// Session is the persisted blob: the vendor record plus the backend
// session cookie issued at login/registration.
type Session struct {
	Vendor    api.Vendor `json:"vendor"`
	SessionID string     `json:"session_id,omitempty"`
}

// Store reads and writes the single session slot. It is an explicit
// object rather than package globals so tests can point it at a
// temporary file and fabricate sessions.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default returns a store at the well-known session path
func Default() *Store {
	return NewStore(config.GetSessionPath())
}

// Load reads the persisted session from disk. A missing file is not an
// error; it means no vendor is logged in.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Save overwrites the persisted session entirely. Partial merges (for
// example keeping BusinessInfo across a profile edit that did not touch
// it) are the caller's responsibility before calling Save.
func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Clear removes the persisted session. Clearing an already-empty slot
// is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Vendor returns the active vendor, or nil when nobody is logged in
func (s *Store) Vendor() *api.Vendor {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return nil
	}
	return &sess.Vendor
}
