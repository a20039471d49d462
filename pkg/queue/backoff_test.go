package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBackoff(t *testing.T) {
	base := 2 * time.Second
	cap := time.Minute

	t.Run("doubles per attempt within jitter bounds", func(t *testing.T) {
		for attempt, want := range map[int]time.Duration{
			1: 2 * time.Second,
			2: 4 * time.Second,
			3: 8 * time.Second,
			4: 16 * time.Second,
		} {
			got := NextBackoff(base, cap, attempt)
			lo := time.Duration(float64(want) * (1 - backoffJitterFraction))
			hi := time.Duration(float64(want) * (1 + backoffJitterFraction))
			assert.GreaterOrEqual(t, got, lo, "attempt %d", attempt)
			assert.LessOrEqual(t, got, hi, "attempt %d", attempt)
		}
	})

	t.Run("caps at the ceiling", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			got := NextBackoff(base, cap, 20)
			assert.LessOrEqual(t, got, time.Duration(float64(cap)*(1+backoffJitterFraction)))
			assert.GreaterOrEqual(t, got, time.Duration(float64(cap)*(1-backoffJitterFraction)))
		}
	})

	t.Run("never negative for degenerate attempts", func(t *testing.T) {
		assert.GreaterOrEqual(t, NextBackoff(base, cap, 0), time.Duration(0))
		assert.GreaterOrEqual(t, NextBackoff(base, cap, -3), time.Duration(0))
	})
}
