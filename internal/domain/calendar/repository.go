package calendar

import (
	"context"
	"time"
)

// PermissionRepository resolves staff permissions. Pure reads, no side
// effects.
type PermissionRepository interface {
	// ReadPermissions returns the calendar-visible read permissions of one
	// staff member; may be empty.
	ReadPermissions(ctx context.Context, staffCode string) ([]Permission, error)

	// AllPermissions returns every permission assigned to the staff member,
	// including its type grouping.
	AllPermissions(ctx context.Context, staffCode string) ([]Permission, error)
}

// The per-module stores below share the two-stage shape of the underlying
// named queries: an unfiltered header list, then one detail fetch per
// header key. Detail fetches for keys not present in a header list are
// never issued. A detail fetch may return shared.ErrNotFound when the key
// no longer resolves; header and detail observe the store at different
// times.

// RequisitionStore reads purchase requisitions.
type RequisitionStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*RequisitionDetail, error)
}

// QuotationRequestStore reads requests for quotation.
type QuotationRequestStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*QuotationRequestDetail, error)
}

// QuotationRegistrationStore reads registered quotations bucketed by date.
type QuotationRegistrationStore interface {
	ListHeaders(ctx context.Context) ([]BucketHeader, error)
	FetchDetail(ctx context.Context, date time.Time) ([]QuotationRegistrationRecord, error)
}

// OrderStore reads purchase orders, including the terms result set.
type OrderStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*OrderDetail, error)
}

// ReceiptStore reads goods receipt notes.
type ReceiptStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*ReceiptDetail, error)
}

// ReturnStore reads goods returns.
type ReturnStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*ReturnDetail, error)
}

// QualityCheckStore reads quality checks bucketed by (date, status).
type QualityCheckStore interface {
	ListHeaders(ctx context.Context) ([]BucketHeader, error)
	FetchDetail(ctx context.Context, date time.Time, status string) ([]QualityCheckRecord, error)
}

// StockRefillStore reads item stock refill requests bucketed by
// (date, requesting staff).
type StockRefillStore interface {
	ListHeaders(ctx context.Context) ([]BucketHeader, error)
	FetchDetail(ctx context.Context, date time.Time, staffCode string) ([]PlanningRecord, error)
}

// JustInTimeStore reads just-in-time requests bucketed by
// (date, requesting staff).
type JustInTimeStore interface {
	ListHeaders(ctx context.Context) ([]BucketHeader, error)
	FetchDetail(ctx context.Context, date time.Time, staffCode string) ([]PlanningRecord, error)
}

// MaterialPlanningStore reads material requirement plans.
type MaterialPlanningStore interface {
	ListHeaders(ctx context.Context) ([]DocumentHeader, error)
	FetchDetail(ctx context.Context, code string) (*MaterialPlanningDetail, error)
}
