package mockdata

import (
	"time"

	"mesa-kpi/internal/core/domain"
)

// Campaigns returns the static campaign catalog of a session.
func Campaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:        "1",
			Name:      "Promo été 2024 - E-liquides",
			StartDate: date("2024-06-01"),
			EndDate:   datePtr("2024-08-31"),
			Status:    domain.CampaignActive,
			Budget:    8000,
			Spent:     5200,
			Revenue:   28600,
		},
		{
			ID:        "2",
			Name:      "Black Friday 2024",
			StartDate: date("2024-11-25"),
			EndDate:   datePtr("2024-11-30"),
			Status:    domain.CampaignActive,
			Budget:    15000,
			Spent:     12500,
			Revenue:   68000,
		},
		{
			ID:        "3",
			Name:      "Lancement nouveaux pods",
			StartDate: date("2024-09-15"),
			EndDate:   datePtr("2024-10-15"),
			Status:    domain.CampaignCompleted,
			Budget:    5000,
			Spent:     4800,
			Revenue:   22400,
		},
		{
			ID:        "4",
			Name:      "Newsletter fidélité",
			StartDate: date("2024-06-01"),
			Status:    domain.CampaignPaused,
			Budget:    5000,
			Spent:     3200,
			Revenue:   15600,
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}
