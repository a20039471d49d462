package queue

import (
	"math/rand/v2"
	"time"
)

// backoffJitterFraction spreads retries so a burst of failures does not
// come back as a burst of retries.
const backoffJitterFraction = 0.3

// NextBackoff returns the delay before retry number attempt (1-based):
// base * 2^(attempt-1), capped, with ±30% jitter.
func NextBackoff(base, cap time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= cap {
			d = cap
			break
		}
	}
	if d > cap {
		d = cap
	}

	jitter := time.Duration(float64(d) * backoffJitterFraction)
	if jitter <= 0 {
		return d
	}
	// Range: [d - jitter, d + jitter]
	return d - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
}
