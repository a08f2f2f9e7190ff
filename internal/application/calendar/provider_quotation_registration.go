package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// QuotationRegistrationProvider builds one event per registration date,
// embedding every quotation registered that day in the payload.
type QuotationRegistrationProvider struct {
	store   calendar.QuotationRegistrationStore
	limiter *DetailLimiter
}

// NewQuotationRegistrationProvider creates a QuotationRegistrationProvider.
func NewQuotationRegistrationProvider(store calendar.QuotationRegistrationStore, limiter *DetailLimiter) *QuotationRegistrationProvider {
	return &QuotationRegistrationProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *QuotationRegistrationProvider) Tag() calendar.ModuleTag {
	return calendar.TagQuotationRegistration
}

// Events implements EventProvider.
func (p *QuotationRegistrationProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotation registration headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.BucketHeader) (calendar.Event, error) {
			records, err := p.store.FetchDetail(ctx, h.Date)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("quotation registrations on %s: %w", startDate(h.Date), err)
			}

			lines := make([]calendar.QuotationRegistrationLine, len(records))
			for i, r := range records {
				lines[i] = calendar.QuotationRegistrationLine{
					RegisterQuotationCode: r.RegisterQuotationCode,
					RFQCode:               r.RFQCode,
					VendorName:            r.VendorName,
					StatusName:            r.StatusName,
					AddedBy:               r.AddedBy,
					DeliveryDate:          payloadDate(r.DeliveryDate),
					AddedDate:             payloadDate(r.AddedDate),
					ApprovedBy:            r.ApprovedBy,
					ApprovedDate:          payloadDate(r.ApprovedDate),
					ShippingCharges:       r.ShippingCharges,
				}
			}

			return calendar.Event{
				ID: fmt.Sprintf("RQ-%s", h.Date.Format(bucketKeyLayout)),
				Title: fmt.Sprintf("%d Quotation%s %s Registered By %s",
					h.Count, pluralSuffix(h.Count), countVerb(h.Count), h.AddedBy),
				Start: startDate(h.Date),
				Color: colorQuotationRegistration,
				ExtendedProps: calendar.QuotationRegistrationPayload{
					Module: calendar.TagQuotationRegistration,
					Items:  lines,
				},
			}, nil
		})
}
