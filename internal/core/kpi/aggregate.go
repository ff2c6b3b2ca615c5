// Package kpi holds the pure aggregation functions behind the dashboard.
// Every function takes the record sequence it works on and never keeps a
// reference to it. Divisions are left unguarded unless stated otherwise,
// so NaN and ±Inf flow through to the caller.
package kpi

import (
	"unicode"
	"unicode/utf8"

	"mesa-kpi/internal/core/domain"
)

// Summarize totals sales and orders. AverageOrderValue is TotalSales /
// TotalOrders and is NaN for an empty sequence.
func Summarize(records []domain.DailyRecord) domain.Summary {
	var s domain.Summary
	for _, r := range records {
		s.TotalSales += r.Sales
		s.TotalOrders += r.Orders
	}
	s.AverageOrderValue = s.TotalSales / float64(s.TotalOrders)
	return s
}

// Distribution groups records by product type. Categories keep the order in
// which they first appear in records and their label is capitalized.
func Distribution(records []domain.DailyRecord) []domain.ProductPerformance {
	index := make(map[string]int)
	out := make([]domain.ProductPerformance, 0)
	for _, r := range records {
		i, ok := index[r.ProductType]
		if !ok {
			i = len(out)
			index[r.ProductType] = i
			out = append(out, domain.ProductPerformance{Category: Capitalize(r.ProductType)})
		}
		out[i].Sales += r.Sales
		out[i].Orders += r.Orders
	}
	return out
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
