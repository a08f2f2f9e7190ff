package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/p2p/backend/internal/domain/calendar"
	"gorm.io/gorm"
)

// GormStockRefillStore reads item stock refill requests bucketed by
// (date, requesting staff).
type GormStockRefillStore struct {
	db *gorm.DB
}

// NewStockRefillStore creates a GormStockRefillStore.
func NewStockRefillStore(db *gorm.DB) *GormStockRefillStore {
	return &GormStockRefillStore{db: db}
}

// ListHeaders implements calendar.StockRefillStore.
func (s *GormStockRefillStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	var headers []calendar.BucketHeader
	if err := s.db.WithContext(ctx).Raw(stockRefillHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query stock refill headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.StockRefillStore.
func (s *GormStockRefillStore) FetchDetail(ctx context.Context, date time.Time, staffCode string) ([]calendar.PlanningRecord, error) {
	var records []calendar.PlanningRecord
	if err := s.db.WithContext(ctx).Raw(stockRefillDetailQuery, date, staffCode).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("query stock refills on %s by %s: %w", date.Format("2006-01-02"), staffCode, err)
	}
	return records, nil
}

// GormJustInTimeStore reads just-in-time requests bucketed by
// (date, requesting staff).
type GormJustInTimeStore struct {
	db *gorm.DB
}

// NewJustInTimeStore creates a GormJustInTimeStore.
func NewJustInTimeStore(db *gorm.DB) *GormJustInTimeStore {
	return &GormJustInTimeStore{db: db}
}

// ListHeaders implements calendar.JustInTimeStore.
func (s *GormJustInTimeStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	var headers []calendar.BucketHeader
	if err := s.db.WithContext(ctx).Raw(justInTimeHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query just in time headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.JustInTimeStore.
func (s *GormJustInTimeStore) FetchDetail(ctx context.Context, date time.Time, staffCode string) ([]calendar.PlanningRecord, error) {
	var records []calendar.PlanningRecord
	if err := s.db.WithContext(ctx).Raw(justInTimeDetailQuery, date, staffCode).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("query just in time requests on %s by %s: %w", date.Format("2006-01-02"), staffCode, err)
	}
	return records, nil
}
