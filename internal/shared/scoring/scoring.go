package scoring

import (
	"math/rand"
	"sync"
	"time"
)

// Scorer draws placeholder scores. Implementations must be safe for concurrent use.
type Scorer interface {
	// Score returns an integer in [lo, hi).
	Score(lo, hi int) int
}

// Random draws uniformly from a seeded source.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a Random scorer. A zero seed uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // placeholder scores, not security sensitive
}

func (r *Random) Score(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.mu.Lock()
	n := r.rng.Intn(hi - lo)
	r.mu.Unlock()
	return lo + n
}

// Fixed always returns the lower bound plus Offset, capped below hi.
type Fixed struct {
	Offset int
}

func (f Fixed) Score(lo, hi int) int {
	if v := lo + f.Offset; v < hi {
		return v
	}
	if hi > lo {
		return hi - 1
	}
	return lo
}
