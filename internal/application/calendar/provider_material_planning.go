package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// MaterialPlanningProvider builds one event per material requirement plan.
type MaterialPlanningProvider struct {
	store   calendar.MaterialPlanningStore
	limiter *DetailLimiter
}

// NewMaterialPlanningProvider creates a MaterialPlanningProvider.
func NewMaterialPlanningProvider(store calendar.MaterialPlanningStore, limiter *DetailLimiter) *MaterialPlanningProvider {
	return &MaterialPlanningProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *MaterialPlanningProvider) Tag() calendar.ModuleTag { return calendar.TagMaterialPlanning }

// Events implements EventProvider.
func (p *MaterialPlanningProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list material planning headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			detail, err := p.store.FetchDetail(ctx, h.Code)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("material plan %s: %w", h.Code, err)
			}
			return calendar.Event{
				ID:    h.Code,
				Title: fmt.Sprintf("Material Requirement Planning Entry Is Added By %s", h.AddedBy),
				Start: startStamp(h.AddedDate),
				Color: colorMaterialPlanning,
				ExtendedProps: calendar.MaterialPlanningPayload{
					Module:                  calendar.TagMaterialPlanning,
					MaterialReqPlanningCode: detail.MaterialReqPlanningCode,
					PlanName:                detail.PlanName,
					PlanYear:                detail.PlanYear,
					FromDate:                payloadDate(detail.FromDate),
					ToDate:                  payloadDate(detail.ToDate),
					StatusName:              detail.StatusName,
					AddedBy:                 detail.AddedBy,
					AddedDate:               payloadDate(detail.AddedDate),
					ApprovedBy:              detail.ApprovedBy,
					ApprovedDate:            payloadDate(detail.ApprovedDate),
					Reason:                  detail.Reason,
					Items:                   detail.Items,
				},
			}, nil
		})
}
