package domain

import "time"

// CampaignStatus is the lifecycle state of a marketing operation.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign represents a marketing operation tracked over a date range.
// Amounts are euros. Campaigns are static for the lifetime of a session.
type Campaign struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   *time.Time // nil for open-ended operations
	Status    CampaignStatus
	Budget    float64
	Spent     float64
	Revenue   float64
}

// CampaignMetrics are the figures derived from a single Campaign.
// Percentages are expressed in the 0..100 range and may be NaN or ±Inf
// when the divisor is zero (only ROI is guarded).
type CampaignMetrics struct {
	BudgetUsedPercent float64
	ROI               float64
	ProfitMargin      float64
	Profit            float64
	RevenueGoal       float64
	DaysRemaining     *int // nil when the campaign has no end date
	ShowCountdown     bool
}
