package kpi

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-kpi/internal/core/domain"
)

func TestCampaignMetricsROI(t *testing.T) {
	now := day("2024-06-01")

	m := CampaignMetrics(domain.Campaign{Budget: 200, Spent: 100, Revenue: 150}, now)
	assert.Equal(t, 50.0, m.ROI)
	assert.Equal(t, 50.0, m.BudgetUsedPercent)
	assert.InDelta(t, 33.333, m.ProfitMargin, 0.001)
	assert.Equal(t, 50.0, m.Profit)
	assert.InDelta(t, 180.0, m.RevenueGoal, 1e-9)
	assert.Nil(t, m.DaysRemaining)
	assert.False(t, m.ShowCountdown)
}

func TestCampaignMetricsZeroSpentGuardsROI(t *testing.T) {
	m := CampaignMetrics(domain.Campaign{Budget: 1000, Spent: 0, Revenue: 500}, day("2024-06-01"))
	assert.Equal(t, 0.0, m.ROI)
	assert.Equal(t, 0.0, m.BudgetUsedPercent)
}

func TestCampaignMetricsUnguardedDivisions(t *testing.T) {
	m := CampaignMetrics(domain.Campaign{Budget: 0, Spent: 0, Revenue: 0}, day("2024-06-01"))
	assert.True(t, math.IsNaN(m.BudgetUsedPercent))
	assert.True(t, math.IsNaN(m.ProfitMargin))
	assert.Equal(t, 0.0, m.ROI)

	m = CampaignMetrics(domain.Campaign{Budget: 0, Spent: 10, Revenue: 0}, day("2024-06-01"))
	assert.True(t, math.IsInf(m.BudgetUsedPercent, 1))
	assert.True(t, math.IsInf(m.ProfitMargin, -1))
}

func TestCampaignMetricsDaysRemaining(t *testing.T) {
	end := day("2024-08-31")
	c := domain.Campaign{Budget: 1, Spent: 1, Revenue: 1, EndDate: &end, Status: domain.CampaignActive}

	m := CampaignMetrics(c, end.Add(-36*time.Hour))
	require.NotNil(t, m.DaysRemaining)
	assert.Equal(t, 2, *m.DaysRemaining)
	assert.True(t, m.ShowCountdown)

	m = CampaignMetrics(c, end.Add(48*time.Hour))
	require.NotNil(t, m.DaysRemaining)
	assert.Equal(t, -2, *m.DaysRemaining)
	assert.False(t, m.ShowCountdown)

	c.Status = domain.CampaignPaused
	m = CampaignMetrics(c, end.Add(-36*time.Hour))
	assert.False(t, m.ShowCountdown)
}

func TestDaysRemainingRoundsUp(t *testing.T) {
	end := day("2024-11-30")
	assert.Equal(t, 1, DaysRemaining(end, end.Add(-time.Minute)))
	assert.Equal(t, 0, DaysRemaining(end, end))
}
