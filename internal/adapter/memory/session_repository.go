package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"mesa-kpi/internal/core/domain"
	"mesa-kpi/internal/core/port"
	"mesa-kpi/internal/mockdata"
)

// Options sizes the generated sequences.
type Options struct {
	DashboardDays int
	OperationDays int
}

// SessionRepository implements port.SessionRepository in process memory.
// Every sequence is regenerated from the generator on construction and on
// Reset; nothing outlives the process.
type SessionRepository struct {
	gen  *mockdata.Generator
	opts Options
	now  func() time.Time

	mu        sync.RWMutex
	dashboard []domain.DailyRecord
	campaigns []domain.Campaign
	byID      map[string][]domain.DailyRecord
}

var _ port.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository returns a repository filled with generated data.
func NewSessionRepository(gen *mockdata.Generator, opts Options, now func() time.Time) *SessionRepository {
	r := &SessionRepository{gen: gen, opts: opts, now: now}
	r.regenerate()
	return r
}

// DashboardRecords returns a copy of the overview sequence.
func (r *SessionRepository) DashboardRecords(_ context.Context) ([]domain.DailyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.dashboard), nil
}

// UpdateDashboardRecords replaces the overview sequence with fn's result.
func (r *SessionRepository) UpdateDashboardRecords(_ context.Context, fn func([]domain.DailyRecord) []domain.DailyRecord) ([]domain.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboard = fn(slices.Clone(r.dashboard))
	return slices.Clone(r.dashboard), nil
}

// Campaigns returns the campaign catalog.
func (r *SessionRepository) Campaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.campaigns), nil
}

// Campaign returns a campaign by id.
func (r *SessionRepository) Campaign(_ context.Context, id string) (domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Campaign{}, port.ErrCampaignNotFound
}

// CampaignRecords returns a copy of the sequence of campaign id.
func (r *SessionRepository) CampaignRecords(_ context.Context, id string) ([]domain.DailyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs, ok := r.byID[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return slices.Clone(recs), nil
}

// UpdateCampaignRecords replaces the sequence of campaign id with fn's result.
func (r *SessionRepository) UpdateCampaignRecords(_ context.Context, id string, fn func([]domain.DailyRecord) []domain.DailyRecord) ([]domain.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, ok := r.byID[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	recs = fn(slices.Clone(recs))
	r.byID[id] = recs
	return slices.Clone(recs), nil
}

// Reset regenerates every sequence.
func (r *SessionRepository) Reset(_ context.Context) error {
	r.regenerate()
	return nil
}

func (r *SessionRepository) regenerate() {
	campaigns := mockdata.Campaigns()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboard = r.gen.Dashboard(r.opts.DashboardDays, r.now())
	r.campaigns = campaigns
	r.byID = make(map[string][]domain.DailyRecord, len(campaigns))
	for _, c := range campaigns {
		r.byID[c.ID] = r.gen.Operation(c, r.opts.OperationDays)
	}
}
