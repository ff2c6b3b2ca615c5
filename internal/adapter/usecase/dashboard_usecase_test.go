package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-kpi/internal/adapter/memory"
	"mesa-kpi/internal/core/domain"
	"mesa-kpi/internal/core/port"
	"mesa-kpi/internal/core/port/mocks"
	"mesa-kpi/internal/mockdata"
)

var fixedNow = time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// countingRecorder records instrumentation events.
type countingRecorder struct {
	added  map[string]int
	failed map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{added: map[string]int{}, failed: map[string]int{}}
}

func (r *countingRecorder) RecordAdded(view string)       { r.added[view]++ }
func (r *countingRecorder) ValidationFailed(field string) { r.failed[field]++ }

func newMemoryUseCase(opts ...Option) *DashboardUseCase {
	repo := memory.NewSessionRepository(
		mockdata.NewGenerator(mockdata.NewSource(5)),
		memory.Options{DashboardDays: 30, OperationDays: 60},
		clock,
	)
	return NewDashboardUseCase(repo, append([]Option{WithClock(clock)}, opts...)...)
}

// TestAddRecordDefaults checks the end-to-end add-data example: average
// order value derived, campaign name defaulted.
func TestAddRecordDefaults(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)

	var inserted []domain.DailyRecord
	repo.EXPECT().
		UpdateDashboardRecords(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func([]domain.DailyRecord) []domain.DailyRecord) ([]domain.DailyRecord, error) {
			inserted = fn(nil)
			return inserted, nil
		})

	svc := NewDashboardUseCase(repo, WithClock(clock), WithIDFunc(func() string { return "id-1" }))

	recs, err := svc.AddRecord(context.Background(), port.AddRecordReq{Sales: "1000", Orders: "20", ProductType: "pods"})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "id-1", r.ID)
	assert.Equal(t, 50.0, r.AverageOrderValue)
	assert.Equal(t, domain.DefaultCampaignName, r.CampaignName)
	assert.Equal(t, "2024-06-30", r.Date.Format(domain.DateLayout))
	assert.Equal(t, domain.ProductPods, r.ProductType)
}

func TestAddRecordMissingFieldsDoNotMutate(t *testing.T) {
	cases := []struct {
		name  string
		req   port.AddRecordReq
		field string
	}{
		{"sales", port.AddRecordReq{Orders: "2", ProductType: "pods"}, "sales"},
		{"orders", port.AddRecordReq{Sales: "10", ProductType: "pods"}, "orders"},
		{"product", port.AddRecordReq{Sales: "10", Orders: "2"}, "productType"},
		{"blank sales", port.AddRecordReq{Sales: "  ", Orders: "2", ProductType: "pods"}, "sales"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// no expectations: any repository call fails the test
			repo := mocks.NewMockSessionRepository(t)
			rec := newCountingRecorder()
			svc := NewDashboardUseCase(repo, WithRecorder(rec))

			_, err := svc.AddRecord(context.Background(), tc.req)

			require.ErrorIs(t, err, ErrMissingField)
			require.ErrorIs(t, err, ErrValidation)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, 1, rec.failed[tc.field])
		})
	}
}

func TestAddRecordInvalidFields(t *testing.T) {
	cases := []struct {
		req   port.AddRecordReq
		field string
	}{
		{port.AddRecordReq{Sales: "abc", Orders: "2", ProductType: "pods"}, "sales"},
		{port.AddRecordReq{Sales: "10", Orders: "two", ProductType: "pods"}, "orders"},
		{port.AddRecordReq{Sales: "10", Orders: "2", ProductType: "cigars"}, "productType"},
		{port.AddRecordReq{Sales: "10", Orders: "2", ProductType: "pods", Date: "30/06/2024"}, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			repo := mocks.NewMockSessionRepository(t)
			svc := NewDashboardUseCase(repo)

			_, err := svc.AddRecord(context.Background(), tc.req)

			require.ErrorIs(t, err, ErrInvalidField)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

// TestAddRecordZeroOrders documents that zero orders are accepted and
// leave the average order value undefined.
func TestAddRecordZeroOrders(t *testing.T) {
	svc := newMemoryUseCase()

	recs, err := svc.AddRecord(context.Background(), port.AddRecordReq{Date: "2024-06-15", Sales: "1000", Orders: "0", ProductType: "pods"})
	require.NoError(t, err)
	require.Len(t, recs, 31)

	var found bool
	for _, r := range recs {
		if r.Orders == 0 && r.Sales == 1000 {
			found = true
			assert.True(t, math.IsInf(r.AverageOrderValue, 1))
		}
	}
	assert.True(t, found)
}

func TestAddRecordKeepsSequenceSorted(t *testing.T) {
	rec := newCountingRecorder()
	svc := newMemoryUseCase(WithRecorder(rec))
	ctx := context.Background()

	for _, d := range []string{"2024-06-10", "2024-05-01", "2024-07-04", "2024-06-10"} {
		_, err := svc.AddRecord(ctx, port.AddRecordReq{Date: d, Sales: "12.50", Orders: "1", ProductType: "accessoires", CampaignName: "Soldes"})
		require.NoError(t, err)
	}

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, ov.Records, 34)
	for i := 1; i < len(ov.Records); i++ {
		require.False(t, ov.Records[i].Date.Before(ov.Records[i-1].Date))
	}
	assert.Equal(t, "2024-05-01", ov.Records[0].Date.Format(domain.DateLayout))
	assert.Equal(t, "Soldes", ov.Records[0].CampaignName)
	assert.Equal(t, 4, rec.added[ViewDashboard])
}

func TestOverview(t *testing.T) {
	svc := newMemoryUseCase()

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, ov.Records, 30)
	var total float64
	for _, r := range ov.Records {
		total += r.Sales
	}
	assert.Equal(t, total, ov.Summary.TotalSales)
	assert.NotEmpty(t, ov.Distribution)
	assert.Len(t, ov.Campaigns, len(mockdata.Campaigns()))
}

func TestOverviewRepositoryError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	boom := errors.New("boom")
	repo.EXPECT().DashboardRecords(mock.Anything).Return(nil, boom)

	_, err := NewDashboardUseCase(repo).Overview(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCampaignDetail(t *testing.T) {
	svc := newMemoryUseCase()

	d, err := svc.Campaign(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", d.Campaign.ID)
	require.Len(t, d.Records, 60)
	assert.Len(t, d.Weekly, 9)
	require.Len(t, d.Cumulative, 60)
	assert.InDelta(t, d.Summary.TotalSales, d.Cumulative[59].Revenue, 1e-6)
	assert.InDelta(t, d.Campaign.Revenue, d.Cumulative[59].Target, 1e-6)
	assert.InDelta(t, 450.0, d.Metrics.ROI, 1e-9)
	require.NotNil(t, d.Metrics.DaysRemaining)
	assert.Equal(t, 62, *d.Metrics.DaysRemaining)
}

func TestCampaignNotFound(t *testing.T) {
	svc := newMemoryUseCase()

	_, err := svc.Campaign(context.Background(), "404")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)

	_, err = svc.AddCampaignRecord(context.Background(), "404", port.AddRecordReq{Sales: "1", Orders: "1", ProductType: "pods"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestAddCampaignRecordForcesCampaignName(t *testing.T) {
	rec := newCountingRecorder()
	svc := newMemoryUseCase(WithRecorder(rec), WithIDFunc(func() string { return "added" }))
	ctx := context.Background()

	recs, err := svc.AddCampaignRecord(ctx, "2", port.AddRecordReq{
		Date: "2024-12-01", Sales: "300", Orders: "3", ProductType: "pods", CampaignName: "ignored",
	})
	require.NoError(t, err)
	require.Len(t, recs, 61)

	last := recs[len(recs)-1]
	assert.Equal(t, "added", last.ID)
	assert.Equal(t, "Black Friday 2024", last.CampaignName)
	assert.Equal(t, 1, rec.added[ViewCampaign])

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Len(t, ov.Records, 30, "campaign adds must not touch the overview")
}

func TestReset(t *testing.T) {
	svc := newMemoryUseCase()
	ctx := context.Background()

	_, err := svc.AddRecord(ctx, port.AddRecordReq{Sales: "1", Orders: "1", ProductType: "pods"})
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Len(t, ov.Records, 30)
}
