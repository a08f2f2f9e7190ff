package calendar

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
)

// qcStatusPassed is the store's status name for a passed inspection.
const qcStatusPassed = "Confirmed"

// QualityCheckProvider builds one event per (date, status) inspection
// bucket. The status joins the event id so a day with both passed and
// failed checks yields two distinct events.
type QualityCheckProvider struct {
	store   calendar.QualityCheckStore
	limiter *DetailLimiter
}

// NewQualityCheckProvider creates a QualityCheckProvider.
func NewQualityCheckProvider(store calendar.QualityCheckStore, limiter *DetailLimiter) *QualityCheckProvider {
	return &QualityCheckProvider{store: store, limiter: limiter}
}

// Tag implements EventProvider.
func (p *QualityCheckProvider) Tag() calendar.ModuleTag { return calendar.TagQualityCheck }

// Events implements EventProvider.
func (p *QualityCheckProvider) Events(ctx context.Context) ([]calendar.Event, error) {
	headers, err := p.store.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quality check headers: %w", err)
	}

	return collectEvents(ctx, p.limiter, headers,
		func(ctx context.Context, h calendar.BucketHeader) (calendar.Event, error) {
			records, err := p.store.FetchDetail(ctx, h.Date, h.Status)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("quality checks on %s (%s): %w", startDate(h.Date), h.Status, err)
			}

			lines := make([]calendar.QualityCheckLine, len(records))
			for i, r := range records {
				lines[i] = calendar.QualityCheckLine{
					QualityCheckCode:     r.QualityCheckCode,
					StatusName:           r.StatusName,
					GRNItemsCode:         r.GRNItemsCode,
					ItemCode:             r.ItemCode,
					ItemName:             r.ItemName,
					Quantity:             r.Quantity,
					InspectionFrequency:  r.InspectionFrequency,
					SampleQualityChecked: r.SampleQualityChecked,
					SampleTestFailed:     r.SampleTestFailed,
					QCAddedBy:            r.QCAddedBy,
					QCAddedDate:          payloadDate(r.QCAddedDate),
					QCFailedAddedBy:      r.QCFailedAddedBy,
					QCFailedDate:         payloadDate(r.QCFailedDate),
					Reason:               r.Reason,
				}
			}

			outcome := "Failed"
			if h.Status == qcStatusPassed {
				outcome = "Passed"
			}

			return calendar.Event{
				ID:    fmt.Sprintf("QC-%s-%s", h.Date.Format(bucketKeyLayout), h.Status),
				Title: fmt.Sprintf("%d Items %s Quality Check", h.Count, outcome),
				Start: startDate(h.Date),
				Color: colorQualityCheck,
				ExtendedProps: calendar.QualityCheckPayload{
					Module: calendar.TagQualityCheck,
					Items:  lines,
				},
			}, nil
		})
}
