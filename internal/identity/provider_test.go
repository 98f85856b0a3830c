package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestGetOrCreatePersistsToken(t *testing.T) {
	dir := t.TempDir()
	p := NewProvider(dir)

	id := p.GetOrCreate()
	if !id.Persisted {
		t.Fatal("expected identity to be persisted")
	}
	if _, err := uuid.Parse(id.Token); err != nil {
		t.Fatalf("token %q is not a UUID: %v", id.Token, err)
	}

	b, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		t.Fatalf("token file not written: %v", err)
	}
	if string(b) != id.Token {
		t.Errorf("stored token %q does not match returned token %q", b, id.Token)
	}
}

func TestGetOrCreateIsStable(t *testing.T) {
	dir := t.TempDir()
	p := NewProvider(dir)

	first := p.GetOrCreate()
	second := p.GetOrCreate()
	if first.Token != second.Token {
		t.Errorf("token changed between calls: %q then %q", first.Token, second.Token)
	}

	// A new provider over the same directory must see the same token
	again := NewProvider(dir).GetOrCreate()
	if again.Token != first.Token {
		t.Errorf("token not stable across providers: %q then %q", first.Token, again.Token)
	}
	if !again.Persisted {
		t.Error("re-read identity should be persisted")
	}
}

func TestGetOrCreateFallsBackWhenStorageUnavailable(t *testing.T) {
	// Using a regular file as the profile directory makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := NewProvider(filepath.Join(blocker, "profile"))
	id := p.GetOrCreate()
	if id.Persisted {
		t.Error("identity should not claim persistence when storage is unavailable")
	}
	if id.Token == "" {
		t.Error("fallback identity still needs a token")
	}

	// Stable within the provider's lifetime
	if p.GetOrCreate().Token != id.Token {
		t.Error("ephemeral token should be stable for the provider's lifetime")
	}
}
