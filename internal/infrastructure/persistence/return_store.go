package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReturnStore reads goods returns.
type GormReturnStore struct {
	db *gorm.DB
}

// NewReturnStore creates a GormReturnStore.
func NewReturnStore(db *gorm.DB) *GormReturnStore {
	return &GormReturnStore{db: db}
}

// ListHeaders implements calendar.ReturnStore.
func (s *GormReturnStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(returnHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query return headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.ReturnStore.
func (s *GormReturnStore) FetchDetail(ctx context.Context, code string) (*calendar.ReturnDetail, error) {
	var detail calendar.ReturnDetail
	result := s.db.WithContext(ctx).Raw(returnDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query return %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(returnItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query return %s items: %w", code, err)
	}
	return &detail, nil
}
