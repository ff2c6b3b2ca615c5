package kpi

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa-kpi/internal/core/domain"
)

func TestFormatNonFinite(t *testing.T) {
	assert.Equal(t, "n/a", Euros(math.NaN()))
	assert.Equal(t, "n/a", EurosCents(math.Inf(1)))
	assert.Equal(t, "n/a", Percent(math.Inf(-1), 1))
	assert.Equal(t, "n/a", SignedPercent(math.NaN()))
}

func TestFormatFrenchDecimals(t *testing.T) {
	assert.Equal(t, "50,00€", EurosCents(50))
	assert.Equal(t, "12,5%", Percent(12.5, 1))
	assert.Equal(t, "65%", Percent(65, 0))
	assert.Equal(t, "33,33%", Percent(100.0/3, 2))
	assert.True(t, strings.HasSuffix(Euros(15600), "€"))
}

func TestSignedPercent(t *testing.T) {
	assert.Equal(t, "+388%", SignedPercent(387.5))
	assert.Equal(t, "0%", SignedPercent(0))
	assert.NotContains(t, SignedPercent(-20), "+")
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.13, RoundCents(10.125))
	assert.True(t, math.IsNaN(RoundCents(math.NaN())))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En cours", StatusLabel(domain.CampaignActive))
	assert.Equal(t, "En pause", StatusLabel(domain.CampaignPaused))
	assert.Equal(t, "Terminée", StatusLabel(domain.CampaignCompleted))
}
