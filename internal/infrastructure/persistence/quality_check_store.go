package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/p2p/backend/internal/domain/calendar"
	"gorm.io/gorm"
)

// GormQualityCheckStore reads quality checks bucketed by (date, status).
type GormQualityCheckStore struct {
	db *gorm.DB
}

// NewQualityCheckStore creates a GormQualityCheckStore.
func NewQualityCheckStore(db *gorm.DB) *GormQualityCheckStore {
	return &GormQualityCheckStore{db: db}
}

// ListHeaders implements calendar.QualityCheckStore.
func (s *GormQualityCheckStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	var headers []calendar.BucketHeader
	if err := s.db.WithContext(ctx).Raw(qualityCheckHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query quality check headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.QualityCheckStore.
func (s *GormQualityCheckStore) FetchDetail(ctx context.Context, date time.Time, status string) ([]calendar.QualityCheckRecord, error) {
	var records []calendar.QualityCheckRecord
	if err := s.db.WithContext(ctx).Raw(qualityCheckDetailQuery, date, status).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("query quality checks on %s (%s): %w", date.Format("2006-01-02"), status, err)
	}
	return records, nil
}
