package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// ReturnProvider builds one event per goods return entry.
type ReturnProvider struct {
	store   calendar.ReturnStore
	limiter *DetailLimiter
}

// NewReturnProvider creates a ReturnProvider.
func NewReturnProvider(store calendar.ReturnStore, limiter *DetailLimiter) *ReturnProvider {
	return &ReturnProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *ReturnProvider) Tag() calendar.ModuleTag { return calendar.TagReturn }

// Events implements EventProvider.
func (p *ReturnProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list return headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("goods return %s: %w", h.Code, err)
			}
			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("Goods Return Entry Is Added By %s", h.AddedBy),
				Start: startStamp(h.AddedDate),
				Color: colorReturn,
				ExtendedProps: calendar.ReturnPayload{
					Module:             calendar.TagReturn,
					GoodsReturnCode:    detail.GoodsReturnCode,
					GRNCode:            detail.GRNCode,
					TransporterName:    detail.TransporterName,
					TransportContactNo: detail.TransportContactNo,
					VehicleNo:          detail.VehicleNo,
					VehicleType:        detail.VehicleType,
					Reason:             detail.Reason,
					AddedBy:            detail.AddedBy,
					AddedDate:          payloadDate(detail.AddedDate),
					StatusName:         detail.StatusName,
					Items:              detail.Items,
				},
			}, nil
		})
}
