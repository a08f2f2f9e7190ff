package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// OrderProvider builds one event per purchase order, including the order's
// terms and conditions from the third result set.
type OrderProvider struct {
	store   calendar.OrderStore
	limiter *DetailLimiter
}

// NewOrderProvider creates an OrderProvider.
func NewOrderProvider(store calendar.OrderStore, limiter *DetailLimiter) *OrderProvider {
	return &OrderProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *OrderProvider) Tag() calendar.ModuleTag { return calendar.TagOrder }

// Events implements EventProvider.
func (p *OrderProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list order headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("order %s: %w", h.Code, err)
			}

			terms := detail.TermConditions
			if terms == nil {
				terms = []string{}
			}

			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("Purchase Order Is Added By %s", h.AddedBy),
				Start: startStamp(h.AddedDate),
				Color: colorOrder,
				ExtendedProps: calendar.OrderPayload{
					Module:          calendar.TagOrder,
					POCode:          detail.POCode,
					StatusName:      detail.StatusName,
					AddedDate:       payloadDate(detail.AddedDate),
					ApprovedDate:    payloadDate(detail.ApprovedDate),
					TotalAmount:     detail.TotalAmount,
					BillingAddress:  detail.BillingAddress,
					VendorName:      detail.VendorName,
					AddedBy:         detail.AddedBy,
					ApprovedBy:      detail.ApprovedBy,
					AccountantName:  detail.AccountantName,
					ShippingCharges: detail.ShippingCharges,
					Items:           detail.Items,
					TermConditions:  terms,
				},
			}, nil
		})
}
