package persistence

import (
	"context"
	"fmt"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormQuotationRequestStore reads requests for quotation.
type GormQuotationRequestStore struct {
	db *gorm.DB
}

// NewQuotationRequestStore creates a GormQuotationRequestStore.
func NewQuotationRequestStore(db *gorm.DB) *GormQuotationRequestStore {
	return &GormQuotationRequestStore{db: db}
}

// ListHeaders implements calendar.QuotationRequestStore.
func (s *GormQuotationRequestStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	var headers []calendar.DocumentHeader
	if err := s.db.WithContext(ctx).Raw(quotationRequestHeadersQuery).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("query quotation request headers: %w", err)
	}
	return headers, nil
}

// FetchDetail implements calendar.QuotationRequestStore.
func (s *GormQuotationRequestStore) FetchDetail(ctx context.Context, code string) (*calendar.QuotationRequestDetail, error) {
	var detail calendar.QuotationRequestDetail
	result := s.db.WithContext(ctx).Raw(quotationRequestDetailQuery, code).Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("query quotation request %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	if err := s.db.WithContext(ctx).Raw(quotationRequestItemsQuery, code).Scan(&detail.Items).Error; err != nil {
		return nil, fmt.Errorf("query quotation request %s items: %w", code, err)
	}
	return &detail, nil
}
