// Package identity issues the pseudonymous per-profile token that attributes
// likes, comments and reports without user accounts.
package identity

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const tokenFile = "anon-id"

// Identity is an opaque attribution token. Persisted is false when the token
// could not be stored durably; such a token must never be used for writes
// that have to be matched against the same identity later (like toggles).
type Identity struct {
	Token     string
	Persisted bool
}

// Provider issues and persists a stable anonymous identity, one token per
// profile directory. The token is written exactly once and never mutated.
type Provider struct {
	dir string

	mu     sync.Mutex
	cached *Identity
}

// NewProvider creates a Provider storing its token under dir
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// DefaultDir returns the per-user directory for the identity token
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bymariana"), nil
}

// GetOrCreate returns the stored identity, generating and persisting a new
// one on first use. When storage is unavailable it falls back to an
// ephemeral, non-persisted token rather than failing; the fallback is stable
// for the lifetime of the Provider only.
func (p *Provider) GetOrCreate() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return *p.cached
	}

	path := filepath.Join(p.dir, tokenFile)
	if b, err := os.ReadFile(path); err == nil {
		if token := strings.TrimSpace(string(b)); token != "" {
			p.cached = &Identity{Token: token, Persisted: true}
			return *p.cached
		}
	}

	token := uuid.NewString()
	id := Identity{Token: token, Persisted: true}
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		id.Persisted = false
	} else if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		id.Persisted = false
	}

	p.cached = &id
	return id
}
