package port

import (
	"context"
	"errors"

	"mesa-kpi/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// SessionRepository holds the state of a dashboard session: the overview
// record sequence, one sequence per campaign and the static campaign
// catalog. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe. Sequences are handed out as
// copies and replaced wholesale, never edited in place.
type SessionRepository interface {
	// DashboardRecords returns the overview sequence sorted by date.
	DashboardRecords(ctx context.Context) ([]domain.DailyRecord, error)
	// UpdateDashboardRecords applies fn to the overview sequence and stores
	// its result atomically. The updated sequence is returned.
	UpdateDashboardRecords(ctx context.Context, fn func([]domain.DailyRecord) []domain.DailyRecord) ([]domain.DailyRecord, error)

	// Campaigns returns the campaign catalog in display order.
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	// Campaign returns a campaign by id or ErrCampaignNotFound.
	Campaign(ctx context.Context, id string) (domain.Campaign, error)

	// CampaignRecords returns the sequence of campaign id or
	// ErrCampaignNotFound.
	CampaignRecords(ctx context.Context, id string) ([]domain.DailyRecord, error)
	// UpdateCampaignRecords is UpdateDashboardRecords for a campaign sequence.
	UpdateCampaignRecords(ctx context.Context, id string, fn func([]domain.DailyRecord) []domain.DailyRecord) ([]domain.DailyRecord, error)

	// Reset replaces every sequence with freshly generated data.
	Reset(ctx context.Context) error
}
