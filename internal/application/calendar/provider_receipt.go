package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// ReceiptProvider builds one event per goods receipt note.
type ReceiptProvider struct {
	store   calendar.ReceiptStore
	limiter *DetailLimiter
}

// NewReceiptProvider creates a ReceiptProvider.
func NewReceiptProvider(store calendar.ReceiptStore, limiter *DetailLimiter) *ReceiptProvider {
	return &ReceiptProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *ReceiptProvider) Tag() calendar.ModuleTag { return calendar.TagReceipt }

// Events implements EventProvider.
func (p *ReceiptProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list receipt headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("receipt %s: %w", h.Code, err)
			}
			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("GRN Is Added By %s", h.AddedBy),
				Start: startStamp(h.AddedDate),
				Color: colorReceipt,
				ExtendedProps: calendar.ReceiptPayload{
					Module:          calendar.TagReceipt,
					POCode:          detail.POCode,
					GRNCode:         detail.GRNCode,
					PODate:          payloadDate(detail.PODate),
					GRNDate:         payloadDate(detail.GRNDate),
					InvoiceDate:     payloadDate(detail.InvoiceDate),
					VendorName:      detail.VendorName,
					InvoiceCode:     detail.InvoiceCode,
					CompanyAddress:  detail.CompanyAddress,
					BillingAddress:  detail.BillingAddress,
					StatusName:      detail.StatusName,
					TotalAmount:     detail.TotalAmount,
					ShippingCharges: detail.ShippingCharges,
					Items:           detail.Items,
				},
			}, nil
		})
}
