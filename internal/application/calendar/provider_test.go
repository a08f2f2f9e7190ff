package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/p2p/backend/internal/domain/calendar"
	"github.com/p2p/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuotationRequestStore struct {
	mock.Mock
}

func (m *mockQuotationRequestStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.DocumentHeader), args.Error(1)
}

func (m *mockQuotationRequestStore) FetchDetail(ctx context.Context, code string) (*calendar.QuotationRequestDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.QuotationRequestDetail), args.Error(1)
}

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) ListHeaders(ctx context.Context) ([]calendar.DocumentHeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.DocumentHeader), args.Error(1)
}

func (m *mockOrderStore) FetchDetail(ctx context.Context, code string) (*calendar.OrderDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.OrderDetail), args.Error(1)
}

type mockQuotationRegistrationStore struct {
	mock.Mock
}

func (m *mockQuotationRegistrationStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.BucketHeader), args.Error(1)
}

func (m *mockQuotationRegistrationStore) FetchDetail(ctx context.Context, date time.Time) ([]calendar.QuotationRegistrationRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.QuotationRegistrationRecord), args.Error(1)
}

type mockQualityCheckStore struct {
	mock.Mock
}

func (m *mockQualityCheckStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.BucketHeader), args.Error(1)
}

func (m *mockQualityCheckStore) FetchDetail(ctx context.Context, date time.Time, status string) ([]calendar.QualityCheckRecord, error) {
	args := m.Called(ctx, date, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.QualityCheckRecord), args.Error(1)
}

type mockStockRefillStore struct {
	mock.Mock
}

func (m *mockStockRefillStore) ListHeaders(ctx context.Context) ([]calendar.BucketHeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.BucketHeader), args.Error(1)
}

func (m *mockStockRefillStore) FetchDetail(ctx context.Context, date time.Time, staffCode string) ([]calendar.PlanningRecord, error) {
	args := m.Called(ctx, date, staffCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.PlanningRecord), args.Error(1)
}

func TestQuotationRequestProvider_EndDateFromHeader(t *testing.T) {
	added := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	expected := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	store := new(mockQuotationRequestStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.DocumentHeader{
		{Code: "RFQ-0007", AddedBy: "Bob", AddedDate: added, EndDate: &expected},
	}, nil)
	store.On("FetchDetail", mock.Anything, "RFQ-0007").Return(&calendar.QuotationRequestDetail{
		RFQCode: "RFQ-0007",
		PRCode:  "PR-0001",
	}, nil)

	p := NewQuotationRequestProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "RFQ-0007", events[0].ID)
	assert.Equal(t, "Request For Quotation Is Added By Bob", events[0].Title)
	assert.Equal(t, "2024-02-01", events[0].Start)
	assert.Equal(t, "2024-02-15", events[0].End)
	assert.Equal(t, "#17a2b8", events[0].Color)
}

func TestQuotationRequestProvider_MissingEndDateEndsToday(t *testing.T) {
	added := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

	store := new(mockQuotationRequestStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.DocumentHeader{
		{Code: "RFQ-0008", AddedBy: "Bob", AddedDate: added},
	}, nil)
	store.On("FetchDetail", mock.Anything, "RFQ-0008").Return(&calendar.QuotationRequestDetail{RFQCode: "RFQ-0008"}, nil)

	p := NewQuotationRequestProvider(store, NewDetailLimiter(2))
	p.now = func() time.Time { return today }

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-03-09", events[0].End)
}

func TestOrderProvider_NilTermsBecomeEmptySlice(t *testing.T) {
	added := time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)

	store := new(mockOrderStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.DocumentHeader{
		{Code: "PO-0003", AddedBy: "Carol", AddedDate: added},
	}, nil)
	store.On("FetchDetail", mock.Anything, "PO-0003").Return(&calendar.OrderDetail{
		POCode:     "PO-0003",
		StatusName: "Approved",
	}, nil)

	p := NewOrderProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Purchase Order Is Added By Carol", events[0].Title)
	assert.Equal(t, "2024-03-05T11:00:00", events[0].Start)

	payload, ok := events[0].ExtendedProps.(calendar.OrderPayload)
	require.True(t, ok)
	assert.NotNil(t, payload.TermConditions)
	assert.Empty(t, payload.TermConditions)
}

func TestQuotationRegistrationProvider_BucketEvent(t *testing.T) {
	day := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	store := new(mockQuotationRegistrationStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.BucketHeader{
		{Count: 3, Date: day, AddedBy: "Dave"},
	}, nil)
	store.On("FetchDetail", mock.Anything, day).Return([]calendar.QuotationRegistrationRecord{
		{RegisterQuotationCode: "RQ-1"},
		{RegisterQuotationCode: "RQ-2"},
		{RegisterQuotationCode: "RQ-3"},
	}, nil)

	p := NewQuotationRegistrationProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "RQ-20240402", events[0].ID)
	assert.Equal(t, "3 Quotations Are Registered By Dave", events[0].Title)
	assert.Equal(t, "2024-04-02", events[0].Start)

	payload, ok := events[0].ExtendedProps.(calendar.QuotationRegistrationPayload)
	require.True(t, ok)
	assert.Len(t, payload.Items, 3)
}

func TestQuotationRegistrationProvider_SingularTitle(t *testing.T) {
	day := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)

	store := new(mockQuotationRegistrationStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.BucketHeader{
		{Count: 1, Date: day, AddedBy: "Dave"},
	}, nil)
	store.On("FetchDetail", mock.Anything, day).Return([]calendar.QuotationRegistrationRecord{
		{RegisterQuotationCode: "RQ-4"},
	}, nil)

	p := NewQuotationRegistrationProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1 Quotation Is Registered By Dave", events[0].Title)
}

func TestQualityCheckProvider_StatusSplitsBuckets(t *testing.T) {
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	store := new(mockQualityCheckStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.BucketHeader{
		{Count: 2, Date: day, Status: "Confirmed"},
		{Count: 1, Date: day, Status: "Rejected"},
	}, nil)
	store.On("FetchDetail", mock.Anything, day, "Confirmed").Return([]calendar.QualityCheckRecord{
		{QualityCheckCode: "QC-1"}, {QualityCheckCode: "QC-2"},
	}, nil)
	store.On("FetchDetail", mock.Anything, day, "Rejected").Return([]calendar.QualityCheckRecord{
		{QualityCheckCode: "QC-3"},
	}, nil)

	p := NewQualityCheckProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "QC-20240506-Confirmed", events[0].ID)
	assert.Equal(t, "2 Items Passed Quality Check", events[0].Title)
	assert.Equal(t, "QC-20240506-Rejected", events[1].ID)
	assert.Equal(t, "1 Items Failed Quality Check", events[1].Title)
}

func TestStockRefillProvider_StaffKeyedBuckets(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	required := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	store := new(mockStockRefillStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.BucketHeader{
		{Count: 2, Date: day, StaffCode: "EMP-002", AddedBy: "Erin"},
	}, nil)
	store.On("FetchDetail", mock.Anything, day, "EMP-002").Return([]calendar.PlanningRecord{
		{ItemCode: "ITM-1", ItemName: "Bolt", Quantity: 10, RequiredDate: &required},
		{ItemCode: "ITM-2", ItemName: "Nut", Quantity: 20},
	}, nil)

	p := NewStockRefillProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ISR-20240601-EMP-002", events[0].ID)
	assert.Equal(t, "2 Item Stock Refill Requests Are Registered By Erin", events[0].Title)

	payload, ok := events[0].ExtendedProps.(calendar.StockRefillPayload)
	require.True(t, ok)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, "10/06/2024", payload.Items[0].RequiredDate)
	assert.Equal(t, "", payload.Items[1].RequiredDate)
}

func TestRequisitionProvider_DetailFailurePropagates(t *testing.T) {
	store := new(mockRequisitionStore)
	store.On("ListHeaders", mock.Anything).Return([]calendar.DocumentHeader{
		{Code: "PR-0009", AddedBy: "Alice", AddedDate: time.Now()},
	}, nil)
	store.On("FetchDetail", mock.Anything, "PR-0009").Return(nil, shared.ErrNotFound)

	p := NewRequisitionProvider(store, NewDetailLimiter(2))

	events, err := p.Events(context.Background())

	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "PR-0009")
}

func TestRequisitionProvider_PreservesHeaderOrder(t *testing.T) {
	added := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := new(mockRequisitionStore)
	headers := []calendar.DocumentHeader{
		{Code: "PR-0001", AddedBy: "Alice", AddedDate: added},
		{Code: "PR-0002", AddedBy: "Bob", AddedDate: added},
		{Code: "PR-0003", AddedBy: "Carol", AddedDate: added},
	}
	store.On("ListHeaders", mock.Anything).Return(headers, nil)
	for _, h := range headers {
		store.On("FetchDetail", mock.Anything, h.Code).Return(&calendar.RequisitionDetail{PRCode: h.Code}, nil)
	}

	p := NewRequisitionProvider(store, NewDetailLimiter(1))

	events, err := p.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "PR-0001", events[0].ID)
	assert.Equal(t, "PR-0002", events[1].ID)
	assert.Equal(t, "PR-0003", events[2].ID)
}

func TestCollectEvents_EmptyHeaders(t *testing.T) {
	events, err := collectEvents(context.Background(), NewDetailLimiter(2), nil,
		func(ctx context.Context, h calendar.DocumentHeader) (calendar.Event, error) {
			t.Fatal("build must not be called without headers")
			return calendar.Event{}, nil
		})

	require.NoError(t, err)
	assert.Nil(t, events)
}
