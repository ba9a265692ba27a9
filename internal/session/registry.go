// Package session holds the volatile token-to-user mapping. Tokens live only
// in process memory: restarting the server invalidates every session, and
// there is no expiry or logout. A multi-instance deployment would need to
// swap the Registry for a Store backed by shared storage; nothing else in the
// codebase depends on where the mapping lives.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Store issues and resolves bearer tokens. Handlers depend only on this
// interface, never on the storage mechanism behind it.
type Store interface {
	Issue(userID int64) (string, error)
	Resolve(token string) (int64, bool)
}

// Registry is the in-memory Store used by a single-instance deployment.
// Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{tokens: map[string]int64{}}
}

// Issue generates a 128-bit random token, records token -> userID, and
// returns the token as 32 lowercase hex characters. A user may hold any
// number of live tokens at once.
func (r *Registry) Issue(userID int64) (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b[:])
	r.mu.Lock()
	r.tokens[token] = userID
	r.mu.Unlock()
	return token, nil
}

// Resolve returns the user id the token was issued to. The second return is
// false for unknown tokens, including the empty string.
func (r *Registry) Resolve(token string) (int64, bool) {
	r.mu.RLock()
	id, ok := r.tokens[token]
	r.mu.RUnlock()
	return id, ok
}
