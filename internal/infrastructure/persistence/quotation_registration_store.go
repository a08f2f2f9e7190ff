package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/p2p/backend/internal/domain/calendar"
	"gorm.io/gorm"
)

// GormQuotationRegistrationStore reads registered quotations bucketed by
// registration date.
type GormQuotationRegistrationStore struct {
	db *gorm.DB
}

// NewQuotationRegistrationStore creates a GormQuotationRegistrationStore.
func NewQuotationRegistrationStore(db *gorm.DB) *GormQuotationRegistrationStore {
	return &GormQuotationRegistrationStore{db: db}
}

// ListHeaders implements calendar.QuotationRegistrationStore.
func (s *GormQuotationRegistrationStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	var headers []calendar.BucketHeader
	if err := s.db.WithContext(ctx).Raw(quotationRegistrationHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query quotation registration headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.QuotationRegistrationStore.
func (s *GormQuotationRegistrationStore) FetchDetail(ctx context.Context, date time.Time) ([]calendar.QuotationRegistrationRecord, error) {
	var records []calendar.QuotationRegistrationRecord
	if err := s.db.WithContext(ctx).Raw(quotationRegistrationDetailQuery, date).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("query quotation registrations on %s: %w", date.Format("2006-01-02"), err)
	}
	return records, nil
}
