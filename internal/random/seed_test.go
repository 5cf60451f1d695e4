package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]struct{})
	for range 8 {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed() error = %v", err)
		}
		seen[seed] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied seeds, got %d distinct", len(seen))
	}
}

func TestResolveSeedKeepsConfigured(t *testing.T) {
	t.Parallel()

	seed, err := ResolveSeed(42)
	if err != nil {
		t.Fatalf("ResolveSeed() error = %v", err)
	}
	if seed != 42 {
		t.Fatalf("seed = %d, want 42", seed)
	}
}
