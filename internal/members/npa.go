package members

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// NPAGenerator produces candidate membership numbers. An NPA is the
// issue date as YYYYMMDD followed by a four digit random suffix, so
// any single day has a namespace of 10000 candidates. Uniqueness is
// not guaranteed here; it is enforced by the members_npa_key constraint
// and the caller retries on collision.
type NPAGenerator struct {
	now func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

// NewNPAGenerator seeds a generator from the wall clock.
func NewNPAGenerator() *NPAGenerator {
	return &NPAGenerator{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newNPAGeneratorAt pins the clock and seed, for tests.
func newNPAGeneratorAt(now func() time.Time, seed int64) *NPAGenerator {
	return &NPAGenerator{
		now:  now,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Next returns a fresh candidate NPA.
func (g *NPAGenerator) Next() string {
	g.mu.Lock()
	suffix := g.rand.Intn(10000)
	g.mu.Unlock()
	return fmt.Sprintf("%s%04d", g.now().UTC().Format("20060102"), suffix)
}
