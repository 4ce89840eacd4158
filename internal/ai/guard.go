package ai

import (
	"context"
	"errors"
	"time"

	"ecoroute/internal/metrics"
	"ecoroute/internal/types"
)

// Guarded decorates a Provider with a per-call deadline and upstream metrics.
type Guarded struct {
	next    Provider
	name    string
	timeout time.Duration
	metrics *metrics.Metrics
}

// WithGuard wraps next. A zero timeout leaves the caller's deadline untouched; m may be nil.
func WithGuard(next Provider, name string, timeout time.Duration, m *metrics.Metrics) *Guarded {
	return &Guarded{next: next, name: name, timeout: timeout, metrics: m}
}

func (g *Guarded) Generate(ctx context.Context, prompt string) (string, error) {
	return g.call(ctx, "generate", func(ctx context.Context) (string, error) {
		return g.next.Generate(ctx, prompt)
	})
}

func (g *Guarded) GenerateMessages(ctx context.Context, messages []Message) (string, error) {
	return g.call(ctx, "generate_messages", func(ctx context.Context) (string, error) {
		return g.next.GenerateMessages(ctx, messages)
	})
}

func (g *Guarded) call(ctx context.Context, op string, fn func(context.Context) (string, error)) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = &types.UpstreamTimeoutError{Op: g.name + "." + op, Err: err}
	}
	g.metrics.ObserveUpstream(g.name, op, time.Since(start), err)
	return out, err
}
