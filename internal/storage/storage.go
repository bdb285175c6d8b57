package storage

import "errors"

// ErrNotFound is returned when a state key has no stored value.
var ErrNotFound = errors.New("key not found")

// Provider is the durable local key/value state store. It holds the
// handful of values that survive restarts: the theme preference, the
// session expiry, the keyring-fallback token, and the last user id.
// All remote data stays remote.
type Provider interface {
	// Load opens the store, creating it on first use.
	Load() error
	Close() error

	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes key=value durably before returning.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
