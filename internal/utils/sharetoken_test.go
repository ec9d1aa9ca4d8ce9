package utils

import (
	"sync"
	"testing"
)

func TestNewShareToken_Shape(t *testing.T) {
	t.Parallel()

	tok, err := NewShareToken()
	if err != nil {
		t.Fatalf("NewShareToken error: %v", err)
	}
	if len(tok) != ShareTokenLen {
		t.Fatalf("token length: got %d want %d", len(tok), ShareTokenLen)
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("token %q contains non-hex character %q", tok, r)
		}
	}
}

func TestNewShareToken_UniqueUnderConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 16
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				tok, err := NewShareToken()
				if err != nil {
					t.Errorf("NewShareToken error: %v", err)
					return
				}
				mu.Lock()
				if seen[tok] {
					t.Errorf("duplicate share token generated: %s", tok)
				}
				seen[tok] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
