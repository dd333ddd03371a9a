package transform

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source of the randomized effects.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// globalRand uses the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.IntN(n)
}

// NewSeededRand returns a reproducible source safe for concurrent use.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// upTo returns a uniform value in [0, hi], or 0 when hi is not positive.
func upTo(r Rand, hi int) int {
	if hi <= 0 {
		return 0
	}

	return r.IntN(hi + 1)
}

// pick returns a uniformly chosen element of pool.
func pick(r Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}
