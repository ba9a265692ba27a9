package session

import (
	"sync"
	"testing"
)

func TestRegistry_IssueAndResolve(t *testing.T) {
	r := NewRegistry()

	tok, err := r.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(tok) != 32 {
		t.Fatalf("token length = %d, want 32 hex chars", len(tok))
	}
	id, ok := r.Resolve(tok)
	if !ok || id != 42 {
		t.Fatalf("Resolve(%q) = %d, %v", tok, id, ok)
	}
}

func TestRegistry_UnknownToken(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Resolve("deadbeefdeadbeefdeadbeefdeadbeef"); ok {
		t.Fatalf("unknown token resolved")
	}
	if _, ok := r.Resolve(""); ok {
		t.Fatalf("empty token resolved")
	}
}

func TestRegistry_MultipleTokensPerUser(t *testing.T) {
	r := NewRegistry()
	t1, err := r.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	t2, err := r.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("two issued tokens collide: %q", t1)
	}
	// Both stay live; issuing a second token does not revoke the first.
	if id, ok := r.Resolve(t1); !ok || id != 7 {
		t.Fatalf("first token no longer resolves")
	}
	if id, ok := r.Resolve(t2); !ok || id != 7 {
		t.Fatalf("second token does not resolve")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			tok, err := r.Issue(id)
			if err != nil {
				t.Errorf("Issue(%d): %v", id, err)
				return
			}
			got, ok := r.Resolve(tok)
			if !ok || got != id {
				t.Errorf("Resolve after Issue(%d) = %d, %v", id, got, ok)
			}
		}(int64(i))
	}
	wg.Wait()
}
