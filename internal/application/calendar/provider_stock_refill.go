package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// StockRefillProvider builds one event per (date, requesting staff) bucket
// of item stock refill requests.
type StockRefillProvider struct {
	store   calendar.StockRefillStore
	limiter *DetailLimiter
}

// NewStockRefillProvider creates a StockRefillProvider.
func NewStockRefillProvider(store calendar.StockRefillStore, limiter *DetailLimiter) *StockRefillProvider {
	return &StockRefillProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *StockRefillProvider) Tag() calendar.ModuleTag { return calendar.TagStockRefill }

// Events implements EventProvider.
func (p *StockRefillProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock refill headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.BucketHeader) (calendar.Event, error) {
			records, err := p.store.FetchDetail(ctx, h.Date, h.StaffCode)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("stock refills on %s by %s: %w", startDate(h.Date), h.StaffCode, err)
			}

			return calendar.Event{
				ID: fmt.Sprintf("ISR-%s-%s", h.Date.Format(bucketKeyLayout), h.StaffCode),
				Title: fmt.Sprintf("%d Item Stock Refill Request%s %s Registered By %s",
					h.Count, pluralSuffix(h.Count), countVerb(h.Count), h.AddedBy),
				Start: startDate(h.Date),
				Color: colorStockRefill,
				ExtendedProps: calendar.StockRefillPayload{
					Module: calendar.TagStockRefill,
					Items:  planningLines(records),
				},
			}, nil
		})
}

// planningLines maps stock-planning request records to payload lines,
// shared by the stock refill and just-in-time providers.
func planningLines(records []calendar.PlanningRecord) []calendar.PlanningLine {
	lines := make([]calendar.PlanningLine, len(records))
	for i, r := range records {
		lines[i] = calendar.PlanningLine{
			ItemCode:     r.ItemCode,
			ItemName:     r.ItemName,
			Quantity:     r.Quantity,
			RequiredDate: payloadDate(r.RequiredDate),
			StatusName:   r.StatusName,
			AddedBy:      r.AddedBy,
			AddedDate:    payloadDate(r.AddedDate),
		}
	}
	return lines
}
