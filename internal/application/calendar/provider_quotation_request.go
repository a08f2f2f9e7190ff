package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/p2p/backend/internal/domain/calendar"
)

// QuotationRequestProvider builds one event per request for quotation. RFQ
// events span from the added date to the expected delivery date.
type QuotationRequestProvider struct {
	store   calendar.QuotationRequestStore
	limiter *DetailLimiter

	// now is overridable in tests; an RFQ without an expected date ends today.
	now func() time.Time
}

// NewQuotationRequestProvider creates a QuotationRequestProvider.
func NewQuotationRequestProvider(store calendar.QuotationRequestStore, limiter *DetailLimiter) *QuotationRequestProvider {
	return &QuotationRequestProvider{store: store, limiter: limiter, now: time.Now}
}

// Tag implements EventProvider.
func (p *QuotationRequestProvider) Tag() calendar.ModuleTag { return calendar.TagQuotationRequest }

// Events implements EventProvider.
func (p *QuotationRequestProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotation request headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("quotation request %s: %w", h.Code, err)
			}

			end := p.now()
			if h.EndDate != nil {
				end = *h.EndDate
			}

			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("Request For Quotation Is Added By %s", h.AddedBy),
				Start: startDate(h.AddedDate),
				End:   startDate(end),
				Color: colorQuotationRequest,
				ExtendedProps: calendar.QuotationRequestPayload{
					Module:          calendar.TagQuotationRequest,
					RFQCode:         detail.RFQCode,
					PRCode:          detail.PRCode,
					ExpectedDate:    payloadDate(detail.ExpectedDate),
					Description:     detail.Description,
					AddedBy:         detail.AddedBy,
					AddedDate:       payloadDate(detail.AddedDate),
					AccountantName:  detail.AccountantName,
					AccountantEmail: detail.AccountantEmail,
					DeliveryAddress: detail.DeliveryAddress,
					Items:           detail.Items,
				},
			}, nil
		})
}
