package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// JustInTimeProvider builds one event per (date, requesting staff) bucket
// of just-in-time requests.
type JustInTimeProvider struct {
	store   calendar.JustInTimeStore
	limiter *DetailLimiter
}

// NewJustInTimeProvider creates a JustInTimeProvider.
func NewJustInTimeProvider(store calendar.JustInTimeStore, limiter *DetailLimiter) *JustInTimeProvider {
	return &JustInTimeProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *JustInTimeProvider) Tag() calendar.ModuleTag { return calendar.TagJustInTime }

// Events implements EventProvider.
func (p *JustInTimeProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list just in time headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.BucketHeader) (calendar.Event, error) {
			records, err := p.store.FetchDetail(ctx, h.Date, h.StaffCode)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("just in time requests on %s by %s: %w", startDate(h.Date), h.StaffCode, err)
			}

			return calendar.Event{
				ID: fmt.Sprintf("JIT-%s-%s", h.Date.Format(bucketKeyLayout), h.StaffCode),
				Title: fmt.Sprintf("%d Just In Time Request%s %s Registered By %s",
					h.Count, pluralSuffix(h.Count), countVerb(h.Count), h.AddedBy),
				Start: startDate(h.Date),
				Color: colorJustInTime,
				ExtendedProps: calendar.JustInTimePayload{
					Module: calendar.TagJustInTime,
					Items:  planningLines(records),
				},
			}, nil
		})
}
