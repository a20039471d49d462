package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

func gateConfig(t *testing.T, limit int) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(t.TempDir())
	require.NoError(t, err)
	policy := cfg.Stages.Policy("translate")
	policy.MaxSessionConcurrency = limit
	cfg.Stages.Policies["translate"] = policy
	return cfg
}

func TestSessionGates(t *testing.T) {
	t.Run("enforces the per-session limit", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 2))

		r1, ok := g.TryAcquire("sess-a", "translate")
		require.True(t, ok)
		r2, ok := g.TryAcquire("sess-a", "translate")
		require.True(t, ok)

		_, ok = g.TryAcquire("sess-a", "translate")
		assert.False(t, ok, "third acquire should saturate")

		r1()
		r3, ok := g.TryAcquire("sess-a", "translate")
		assert.True(t, ok, "release frees a slot")
		r2()
		r3()
	})

	t.Run("sessions do not share slots", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 1))

		rA, ok := g.TryAcquire("sess-a", "translate")
		require.True(t, ok)
		defer rA()

		rB, ok := g.TryAcquire("sess-b", "translate")
		assert.True(t, ok, "other session has its own gate")
		rB()
	})

	t.Run("stages do not share slots", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 1))

		rT, ok := g.TryAcquire("sess-a", "translate")
		require.True(t, ok)
		defer rT()

		rD, ok := g.TryAcquire("sess-a", "describe")
		assert.True(t, ok, "other stage has its own gate")
		rD()
	})

	t.Run("zero limit means unbounded", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 0))
		for i := 0; i < 100; i++ {
			release, ok := g.TryAcquire("sess-a", "translate")
			require.True(t, ok)
			release()
		}
	})

	t.Run("drop forgets the session", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 1))

		_, ok := g.TryAcquire("sess-a", "translate")
		require.True(t, ok)
		_, ok = g.TryAcquire("sess-a", "translate")
		require.False(t, ok)

		// Terminal sessions release everything even if a release func
		// was lost with a dead worker.
		g.drop("sess-a")
		release, ok := g.TryAcquire("sess-a", "translate")
		assert.True(t, ok)
		release()
	})

	t.Run("concurrent acquires never exceed the limit", func(t *testing.T) {
		g := newSessionGates(gateConfig(t, 4))

		acquired := make(chan func(), 64)
		done := make(chan struct{})
		for i := 0; i < 16; i++ {
			go func() {
				for j := 0; j < 50; j++ {
					if release, ok := g.TryAcquire("sess-a", "translate"); ok {
						select {
						case acquired <- release:
						case <-done:
							release()
							return
						}
					}
				}
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(done)
		assert.LessOrEqual(t, len(acquired), 4)
		for {
			select {
			case release := <-acquired:
				release()
			default:
				return
			}
		}
	})
}
