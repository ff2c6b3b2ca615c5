package kpi

import (
	"math"
	"time"

	"mesa-kpi/internal/core/domain"
)

// revenueGoalFactor is the uplift applied to a campaign's revenue to get
// its revenue objective.
const revenueGoalFactor = 1.2

// CampaignMetrics derives the KPIs of c as seen at now. Only ROI is
// guarded against a zero divisor; budget usage and margin return NaN or
// ±Inf when budget or revenue is zero.
func CampaignMetrics(c domain.Campaign, now time.Time) domain.CampaignMetrics {
	m := domain.CampaignMetrics{
		BudgetUsedPercent: c.Spent / c.Budget * 100,
		ProfitMargin:      (c.Revenue - c.Spent) / c.Revenue * 100,
		Profit:            c.Revenue - c.Spent,
		RevenueGoal:       c.Revenue * revenueGoalFactor,
	}
	if c.Spent > 0 {
		m.ROI = (c.Revenue - c.Spent) / c.Spent * 100
	}
	if c.EndDate != nil {
		days := DaysRemaining(*c.EndDate, now)
		m.DaysRemaining = &days
		m.ShowCountdown = days > 0 && c.Status == domain.CampaignActive
	}
	return m
}

// DaysRemaining returns the number of started days between now and end,
// rounded up. It is negative once end has passed.
func DaysRemaining(end, now time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
