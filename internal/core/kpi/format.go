package kpi

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mesa-kpi/internal/core/domain"
)

// notAvailable is shown in place of NaN and infinite values.
const notAvailable = "n/a"

var printer = message.NewPrinter(language.French)

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundCents rounds an amount half away from zero to two decimals.
// Non-finite values are returned unchanged.
func RoundCents(v float64) float64 {
	if !Finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Euros formats v as whole euros with French digit grouping.
func Euros(v float64) string {
	if !Finite(v) {
		return notAvailable
	}
	return printer.Sprintf("%.0f€", v)
}

// EurosCents formats v as euros with two decimals.
func EurosCents(v float64) string {
	if !Finite(v) {
		return notAvailable
	}
	return printer.Sprintf("%.2f€", RoundCents(v))
}

// Percent formats v with prec decimals followed by a percent sign.
func Percent(v float64, prec int) string {
	if !Finite(v) {
		return notAvailable
	}
	return printer.Sprintf("%.*f%%", prec, v)
}

// SignedPercent is Percent with prec 0 and an explicit plus sign for gains.
func SignedPercent(v float64) string {
	s := Percent(v, 0)
	if Finite(v) && v > 0 {
		return "+" + s
	}
	return s
}

// StatusLabel is the display label of a campaign status.
func StatusLabel(s domain.CampaignStatus) string {
	switch s {
	case domain.CampaignActive:
		return "En cours"
	case domain.CampaignPaused:
		return "En pause"
	case domain.CampaignCompleted:
		return "Terminée"
	default:
		return string(s)
	}
}
