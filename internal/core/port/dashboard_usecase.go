package port

import (
	"context"

	"mesa-kpi/internal/core/domain"
)

// DashboardUseCase defines the business operations exposed by the KPI
// dashboard. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type DashboardUseCase interface {
	// Overview returns the overview records with their summary, product
	// distribution and the campaign list.
	Overview(ctx context.Context) (*Overview, error)

	// AddRecord validates req, builds a record and inserts it into the
	// overview sequence. A validation failure leaves the sequence
	// untouched. The updated sequence is returned.
	AddRecord(ctx context.Context, req AddRecordReq) ([]domain.DailyRecord, error)

	// Campaigns returns every campaign with its derived metrics.
	Campaigns(ctx context.Context) ([]CampaignView, error)

	// Campaign returns the detail view of one campaign. Unknown ids yield
	// ErrCampaignNotFound.
	Campaign(ctx context.Context, id string) (*CampaignDetail, error)

	// AddCampaignRecord is AddRecord on a campaign sequence. The record's
	// campaign name is always the campaign's name.
	AddCampaignRecord(ctx context.Context, id string, req AddRecordReq) ([]domain.DailyRecord, error)

	// Reset regenerates every mock sequence.
	Reset(ctx context.Context) error
}

// AddRecordReq is the raw add-data input. Values are kept as entered so
// that missing fields can be told apart from zero values.
type AddRecordReq struct {
	Date         string `json:"date"`
	Sales        string `json:"sales"`
	Orders       string `json:"orders"`
	ProductType  string `json:"productType"`
	CampaignName string `json:"campaignName"`
}

// CampaignView pairs a campaign with its metrics.
type CampaignView struct {
	Campaign domain.Campaign
	Metrics  domain.CampaignMetrics
}

// Overview is the content of the main dashboard.
type Overview struct {
	Records      []domain.DailyRecord
	Summary      domain.Summary
	Distribution []domain.ProductPerformance
	Campaigns    []CampaignView
}

// CampaignDetail is the content of a single operation page.
type CampaignDetail struct {
	CampaignView
	Records    []domain.DailyRecord
	Summary    domain.Summary
	Weekly     []domain.WeekBucket
	Cumulative []domain.CumulativePoint
}
