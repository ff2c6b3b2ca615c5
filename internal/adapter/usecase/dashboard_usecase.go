package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-kpi/internal/core/domain"
	"mesa-kpi/internal/core/kpi"
	"mesa-kpi/internal/core/port"
)

// View names passed to the Recorder.
const (
	ViewDashboard = "dashboard"
	ViewCampaign  = "campaign"
)

// Recorder receives business events for instrumentation.
type Recorder interface {
	RecordAdded(view string)
	ValidationFailed(field string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAdded(string)      {}
func (nopRecorder) ValidationFailed(string) {}

// DashboardUseCase implements port.DashboardUseCase. It owns no state of
// its own: sequences live in the repository and every figure is derived
// on read by the kpi package.
type DashboardUseCase struct {
	repo     port.SessionRepository
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// Option customises a DashboardUseCase.
type Option func(*DashboardUseCase)

// WithClock overrides the time source used for default dates and days
// remaining.
func WithClock(now func() time.Time) Option {
	return func(u *DashboardUseCase) { u.now = now }
}

// WithRecorder sets the instrumentation sink.
func WithRecorder(r Recorder) Option {
	return func(u *DashboardUseCase) { u.recorder = r }
}

// WithIDFunc overrides the generator of record IDs.
func WithIDFunc(fn func() string) Option {
	return func(u *DashboardUseCase) { u.newID = fn }
}

// NewDashboardUseCase creates a new usecase backed by repo.
func NewDashboardUseCase(repo port.SessionRepository, opts ...Option) *DashboardUseCase {
	u := &DashboardUseCase{
		repo:     repo,
		recorder: nopRecorder{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Overview returns the main dashboard content.
func (u *DashboardUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	recs, err := u.repo.DashboardRecords(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	return &port.Overview{
		Records:      recs,
		Summary:      kpi.Summarize(recs),
		Distribution: kpi.Distribution(recs),
		Campaigns:    campaigns,
	}, nil
}

// AddRecord inserts a record built from req into the overview sequence.
func (u *DashboardUseCase) AddRecord(ctx context.Context, req port.AddRecordReq) ([]domain.DailyRecord, error) {
	rec, err := u.buildRecord(req)
	if err != nil {
		return nil, err
	}
	recs, err := u.repo.UpdateDashboardRecords(ctx, func(recs []domain.DailyRecord) []domain.DailyRecord {
		return kpi.Insert(recs, rec)
	})
	if err != nil {
		return nil, err
	}
	u.recorder.RecordAdded(ViewDashboard)
	return recs, nil
}

// Campaigns returns the catalog with metrics computed at the current time.
func (u *DashboardUseCase) Campaigns(ctx context.Context) ([]port.CampaignView, error) {
	campaigns, err := u.repo.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]port.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, port.CampaignView{Campaign: c, Metrics: kpi.CampaignMetrics(c, now)})
	}
	return out, nil
}

// Campaign returns the detail view of campaign id. The cumulative target
// aims at the campaign's recorded revenue.
func (u *DashboardUseCase) Campaign(ctx context.Context, id string) (*port.CampaignDetail, error) {
	c, err := u.repo.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	recs, err := u.repo.CampaignRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{
		CampaignView: port.CampaignView{Campaign: c, Metrics: kpi.CampaignMetrics(c, u.now())},
		Records:      recs,
		Summary:      kpi.Summarize(recs),
		Weekly:       kpi.Weekly(recs),
		Cumulative:   kpi.Cumulative(recs, c.Revenue),
	}, nil
}

// AddCampaignRecord inserts a record into the sequence of campaign id,
// attributing it to that campaign whatever name req carries.
func (u *DashboardUseCase) AddCampaignRecord(ctx context.Context, id string, req port.AddRecordReq) ([]domain.DailyRecord, error) {
	c, err := u.repo.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	req.CampaignName = c.Name
	rec, err := u.buildRecord(req)
	if err != nil {
		return nil, err
	}
	recs, err := u.repo.UpdateCampaignRecords(ctx, id, func(recs []domain.DailyRecord) []domain.DailyRecord {
		return kpi.Insert(recs, rec)
	})
	if err != nil {
		return nil, err
	}
	u.recorder.RecordAdded(ViewCampaign)
	return recs, nil
}

// Reset regenerates the session data.
func (u *DashboardUseCase) Reset(ctx context.Context) error {
	return u.repo.Reset(ctx)
}

// buildRecord validates req. Orders of zero are accepted and leave the
// average order value undefined.
func (u *DashboardUseCase) buildRecord(req port.AddRecordReq) (domain.DailyRecord, error) {
	salesStr := strings.TrimSpace(req.Sales)
	ordersStr := strings.TrimSpace(req.Orders)
	product := strings.TrimSpace(req.ProductType)

	switch {
	case salesStr == "":
		return domain.DailyRecord{}, u.fieldErr("sales", ErrMissingField)
	case ordersStr == "":
		return domain.DailyRecord{}, u.fieldErr("orders", ErrMissingField)
	case product == "":
		return domain.DailyRecord{}, u.fieldErr("productType", ErrMissingField)
	}

	sales, err := decimal.NewFromString(salesStr)
	if err != nil {
		return domain.DailyRecord{}, u.fieldErr("sales", ErrInvalidField)
	}
	orders, err := strconv.Atoi(ordersStr)
	if err != nil {
		return domain.DailyRecord{}, u.fieldErr("orders", ErrInvalidField)
	}
	if !domain.IsProductType(product) {
		return domain.DailyRecord{}, u.fieldErr("productType", ErrInvalidField)
	}

	date, err := u.parseDate(req.Date)
	if err != nil {
		return domain.DailyRecord{}, u.fieldErr("date", ErrInvalidField)
	}

	return domain.NewDailyRecord(
		u.newID(),
		date,
		sales.InexactFloat64(),
		orders,
		product,
		strings.TrimSpace(req.CampaignName),
	), nil
}

func (u *DashboardUseCase) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := u.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(domain.DateLayout, s)
}

func (u *DashboardUseCase) fieldErr(field string, err error) error {
	u.recorder.ValidationFailed(field)
	return &FieldError{Field: field, Err: err}
}
