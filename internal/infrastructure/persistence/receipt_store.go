package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReceiptStore reads goods receipt notes.
type GormReceiptStore struct {
	db *gorm.DB
}

// NewReceiptStore creates a GormReceiptStore.
func NewReceiptStore(db *gorm.DB) *GormReceiptStore {
	return &GormReceiptStore{db: db}
}

// ListHeaders implements calendar.ReceiptStore.
func (s *GormReceiptStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(receiptHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query receipt headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.ReceiptStore.
func (s *GormReceiptStore) FetchDetail(ctx context.Context, code string) (*calendar.ReceiptDetail, error) {
	var detail calendar.ReceiptDetail
	result := s.db.WithContext(ctx).Raw(receiptDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query receipt %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(receiptItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query receipt %s items: %w", code, err)
	}
	return &detail, nil
}
