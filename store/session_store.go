// Package store holds the storefront's client-side state: the single
// authenticated session (persisted across restarts) and the purely local
// like/cart preferences (reset on restart).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
)

// DefaultSessionFile is the one named slot the session persists to.
const DefaultSessionFile = "user-storage.json"

// sessionSlot is the on-disk shape of the slot. A cleared session is
// persisted as an empty slot, not a deleted file.
type sessionSlot struct {
	User *models.Session `json:"user"`
}

// Sessions holds at most one session process-wide. All mutations persist
// immediately.
type Sessions struct {
	mu   sync.RWMutex
	path string
	cur  *models.Session
}

func NewSessions(path string) *Sessions {
	if path == "" {
		path = DefaultSessionFile
	}
	return &Sessions{path: path}
}

// Init hydrates the session from the durable slot. A missing file is a
// clean first run, not an error.
func (s *Sessions) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var slot sessionSlot
	if err := json.Unmarshal(raw, &slot); err != nil {
		log.Printf("⚠️  session slot unreadable, starting logged out: %v", err)
		return nil
	}
	if slot.User != nil && slot.User.Token != "" {
		s.cur = slot.User
	}
	return nil
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Sessions) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}
	copied := *s.cur
	return &copied
}

// Set replaces the session and persists immediately.
func (s *Sessions) Set(sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = sess
	return s.persist()
}

// Logout clears the session and empties the persisted slot.
func (s *Sessions) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
	return s.persist()
}

// FetchUserDetails refreshes profile fields from the identity endpoint.
// No-op without a session or token. On success the returned fields are
// merged into the session, preserving email and token. On any failure the
// session is cleared entirely — an invalid or expired token is the only
// automatic logout trigger. The token itself is never refreshed here.
func (s *Sessions) FetchUserDetails(ctx context.Context, client *catalog.Client) error {
	s.mu.RLock()
	cur := s.cur
	var token string
	if cur != nil {
		token = cur.Token
	}
	s.mu.RUnlock()

	if token == "" {
		return nil
	}

	profile, err := client.Me(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil || s.cur.Token != token {
		// Session changed while the request was in flight; drop the result.
		return nil
	}
	if err != nil {
		log.Printf("⚠️  failed to fetch user details, logging out: %v", err)
		s.cur = nil
		if perr := s.persist(); perr != nil {
			return perr
		}
		return err
	}
	s.cur.Firstname = profile.Firstname
	s.cur.Lastname = profile.Lastname
	s.cur.Img = profile.Img
	s.cur.RegionID = profile.RegionID
	s.cur.CreatedAt = profile.CreatedAt
	s.cur.PhoneNumber = profile.PhoneNumber
	return s.persist()
}

// persist writes the slot; callers hold s.mu.
func (s *Sessions) persist() error {
	raw, err := json.MarshalIndent(sessionSlot{User: s.cur}, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}
