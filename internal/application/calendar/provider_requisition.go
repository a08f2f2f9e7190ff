package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// RequisitionProvider builds one event per purchase requisition.
type RequisitionProvider struct {
	store   calendar.RequisitionStore
	limiter *DetailLimiter
}

// NewRequisitionProvider creates a RequisitionProvider.
func NewRequisitionProvider(store calendar.RequisitionStore, limiter *DetailLimiter) *RequisitionProvider {
	return &RequisitionProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *RequisitionProvider) Tag() calendar.ModuleTag { return calendar.TagRequisition }

// Events implements EventProvider.
func (p *RequisitionProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requisition headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("requisition %s: %w", h.Code, err)
			}
			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("Purchase Requisition Is Added By %s", h.AddedBy),
				Start: startStamp(h.AddedDate),
				Color: colorRequisition,
				ExtendedProps: calendar.RequisitionPayload{
					Module:       calendar.TagRequisition,
					PRCode:       detail.PRCode,
					RequiredDate: payloadDate(detail.RequiredDate),
					StatusName:   detail.StatusName,
					Description:  detail.Description,
					AddedBy:      detail.AddedBy,
					AddedDate:    payloadDate(detail.AddedDate),
					ApprovedBy:   detail.ApprovedBy,
					ApprovedDate: payloadDate(detail.ApprovedDate),
					PriorityName: detail.PriorityName,
					Items:        detail.Items,
				},
			}, nil
		})
}
