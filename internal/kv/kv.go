// Package kv provides the durable string-keyed byte store the board persists
// into. Three backends share one small interface: badger (default), pebble
// and an in-process map used by tests and throwaway sessions.
package kv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a flat key-value byte store. Values are replaced wholesale on Set.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBadger = "badger"
	BackendPebble = "pebble"
	BackendMemory = "memory"
)

// Backends lists the supported backend names.
var Backends = []string{BackendBadger, BackendPebble, BackendMemory}

// ValidBackend reports whether name is a supported backend.
func ValidBackend(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// Open returns the backend selected by name rooted at path. The memory
// backend ignores path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendBadger:
		return OpenBadger(path)
	case BackendPebble:
		return OpenPebble(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want one of %s)", backend, strings.Join(Backends, ", "))
	}
}
