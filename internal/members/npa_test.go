package members

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPAFormat(t *testing.T) {
	issued := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	gen := newNPAGeneratorAt(func() time.Time { return issued }, 1)

	npa := gen.Next()
	require.Len(t, npa, 12)
	assert.Equal(t, "20260115", npa[:8])
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), npa[8:])
}

func TestNPADatePrefixFollowsClock(t *testing.T) {
	day := time.Date(2026, 1, 15, 23, 0, 0, 0, time.UTC)
	gen := newNPAGeneratorAt(func() time.Time { return day }, 1)
	assert.Equal(t, "20260115", gen.Next()[:8])

	day = time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, "20260302", gen.Next()[:8])
}

func TestNPASuffixStaysInRange(t *testing.T) {
	gen := NewNPAGenerator()
	for i := 0; i < 1000; i++ {
		npa := gen.Next()
		require.Len(t, npa, 12)
		assert.Regexp(t, regexp.MustCompile(`^\d{12}$`), npa)
	}
}

func TestNPAConcurrentNextDoesNotRace(t *testing.T) {
	gen := NewNPAGenerator()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				_ = gen.Next()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
