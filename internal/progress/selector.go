package progress

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/louisbranch/questboard/internal/random"
)

// pcgStream is the fixed PCG increment; only the seed varies per process.
const pcgStream = 0x9e3779b97f4a7c15

// Selector draws uniform random picks for the daily board.
//
// A Selector is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a selector whose sequence is fixed by seed.
func NewSelector(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

// NewRandomSelector returns a selector seeded from crypto/rand.
func NewRandomSelector() (*Selector, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSelector(seed), nil
}

func (s *Selector) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// PickN returns n distinct elements of list chosen uniformly without
// replacement. list is not modified.
func PickN[T any](s *Selector, list []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("pick %d: %w", n, ErrInvalidCount)
	}
	if n > len(list) {
		return nil, fmt.Errorf("pick %d of %d: %w", n, len(list), ErrNotEnoughItems)
	}
	pool := make([]T, len(list))
	copy(pool, list)
	// Partial Fisher-Yates: the first n positions end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + s.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}

// PickReplacement returns one element of list that is not in excluded,
// chosen uniformly among the remaining candidates.
func PickReplacement[T comparable](s *Selector, list []T, excluded []T) (T, error) {
	skip := make(map[T]struct{}, len(excluded))
	for _, item := range excluded {
		skip[item] = struct{}{}
	}
	candidates := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, item := range list {
		if _, ok := skip[item]; ok {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		candidates = append(candidates, item)
	}
	if len(candidates) == 0 {
		var zero T
		return zero, fmt.Errorf("replace among %d excluded of %d: %w", len(excluded), len(list), ErrNoCandidates)
	}
	return candidates[s.intN(len(candidates))], nil
}
