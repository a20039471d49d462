package providers

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

// callGuard bundles the per-provider token bucket and hard call timeout.
// Every adapter call goes through guard.do.
type callGuard struct {
	name    string
	limiter *rate.Limiter
	timeout time.Duration
}

func newCallGuard(name string, cfg config.ProviderConfig) *callGuard {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &callGuard{
		name:    name,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), burst),
		timeout: cfg.Timeout,
	}
}

// do waits for a rate token, then invokes fn under the call deadline.
// A bucket wait that outlives the caller's context surfaces as that
// context's error, not as a provider failure.
func (g *callGuard) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return fn(callCtx)
}
