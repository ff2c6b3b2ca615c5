package kpi

import (
	"fmt"

	"mesa-kpi/internal/core/domain"
)

// WeekSize is the number of consecutive records summed into a WeekBucket.
const WeekSize = 7

// Weekly sums every WeekSize consecutive records into a bucket labelled
// "S1", "S2", ... Buckets follow positions in records, not calendar weeks,
// and the last bucket holds whatever records remain.
func Weekly(records []domain.DailyRecord) []domain.WeekBucket {
	out := make([]domain.WeekBucket, 0, (len(records)+WeekSize-1)/WeekSize)
	for i, r := range records {
		w := i / WeekSize
		if w == len(out) {
			out = append(out, domain.WeekBucket{Label: fmt.Sprintf("S%d", w+1)})
		}
		out[w].Sales += r.Sales
		out[w].Orders += r.Orders
	}
	return out
}

// Cumulative returns the running sum of sales alongside a straight-line
// target reaching goal at the last record.
func Cumulative(records []domain.DailyRecord, goal float64) []domain.CumulativePoint {
	out := make([]domain.CumulativePoint, len(records))
	n := float64(len(records))
	var running float64
	for i, r := range records {
		running += r.Sales
		out[i] = domain.CumulativePoint{
			Date:    r.Date,
			Revenue: running,
			Target:  float64(i+1) / n * goal,
		}
	}
	return out
}
