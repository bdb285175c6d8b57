// Package session holds the authentication credential for the remote
// API. The token lives in the OS keyring when one is available, with
// the state store as fallback; the expiry always lives in the state
// store. The expiry is never compared against the local clock; the
// server decides when a credential stops working.
package session

import (
	"errors"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/storage"
)

// Store is the session credential contract every authenticated view
// depends on.
type Store interface {
	// Get returns the stored token, if any.
	Get() (string, bool)
	// Set persists the token and its expiry.
	Set(token string, expiry time.Time) error
	// Clear removes the credential. Clearing an empty store is a no-op.
	Clear() error
	// Expiry returns the stored expiry, if one was recorded.
	Expiry() (time.Time, bool)
}

// KeyringStore is the production Store.
type KeyringStore struct {
	state storage.Provider
}

func NewKeyringStore(state storage.Provider) *KeyringStore {
	return &KeyringStore{state: state}
}

func (s *KeyringStore) Get() (string, bool) {
	token, err := keyring.Get(constants.KeyringService, constants.KeyringUser)
	if err == nil && token != "" {
		return token, true
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("keyring unavailable, using state store", "error", err)
	}
	token, serr := s.state.Get(constants.StateKeySessionToken)
	if serr != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *KeyringStore) Set(token string, expiry time.Time) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	if err := keyring.Set(constants.KeyringService, constants.KeyringUser, token); err != nil {
		logger.Warn("keyring unavailable, storing token in state store", "error", err)
		if serr := s.state.Set(constants.StateKeySessionToken, token); serr != nil {
			return serr
		}
	}
	if expiry.IsZero() {
		return s.state.Delete(constants.StateKeySessionExpiry)
	}
	return s.state.Set(constants.StateKeySessionExpiry, expiry.Format(time.RFC3339))
}

func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(constants.KeyringService, constants.KeyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("keyring delete failed", "error", err)
	}
	if err := s.state.Delete(constants.StateKeySessionToken); err != nil {
		return err
	}
	return s.state.Delete(constants.StateKeySessionExpiry)
}

func (s *KeyringStore) Expiry() (time.Time, bool) {
	raw, err := s.state.Get(constants.StateKeySessionExpiry)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// KeyringAvailable probes the OS keyring with a read. A missing entry
// still means the keyring itself works; any other failure means the
// token is living in the state store fallback.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.KeyringService, constants.KeyringUser)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	token  string
	expiry time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(token string, expiry time.Time) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	s.token = token
	s.expiry = expiry
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token = ""
	s.expiry = time.Time{}
	return nil
}

func (s *MemoryStore) Expiry() (time.Time, bool) {
	return s.expiry, !s.expiry.IsZero()
}
