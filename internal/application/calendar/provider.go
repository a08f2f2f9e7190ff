package calendar

import (
	"context"

	"github.com/p2p/backend/internal/domain/calendar"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// EventProvider assembles the calendar events of one module through its
// two-stage pipeline: list headers, fetch detail per header, normalize.
type EventProvider interface {
	// Tag identifies the module this provider serves.
	Tag() calendar.ModuleTag

	// Events runs the full list/detail/normalize pipeline. The returned
	// slice preserves the header list order.
	Events(ctx context.Context) ([]calendar.Event, error)
}

// DetailLimiter bounds the number of in-flight detail fetches across all
// providers so a large feed cannot exhaust the store's connection pool.
// It is the only state shared between providers.
type DetailLimiter struct {
	sem *semaphore.Weighted
}

// NewDetailLimiter creates a limiter allowing up to n concurrent detail
// fetches. n must be positive.
func NewDetailLimiter(n int64) *DetailLimiter {
	if n <= 0 {
		n = 1
	}
	return &DetailLimiter{sem: semaphore.NewWeighted(n)}
}

func (l *DetailLimiter) acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

func (l *DetailLimiter) release() {
	l.sem.Release(1)
}

// collectEvents fans out one build call per header under the limiter and
// reassembles the results in header order. The first failure cancels the
// remaining fetches and fails the whole collection; no partial output is
// returned.
func collectEvents[H any](ctx context.Context, limiter *DetailLimiter, headers []H,
	build func(ctx context.Context, header H) (calendar.Event, error)) ([]calendar.Event, error) {

	if len(headers) == 0 {
		return nil, nil
	}

	events := make([]calendar.Event, len(headers))
	g, gctx := errgroup.WithContext(ctx)
	for i, header := range headers {
		g.Go(func() error {
			if err := limiter.acquire(gctx); err != nil {
				return err
			}
			defer limiter.release()

			event, err := build(gctx, header)
			if err != nil {
				return err
			}
			events[i] = event
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return events, nil
}
