package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-kpi/internal/core/domain"
)

func flatRecords(n int, sales float64, orders int) []domain.DailyRecord {
	start := day("2024-06-01")
	out := make([]domain.DailyRecord, n)
	for i := range out {
		out[i] = domain.NewDailyRecord("", start.AddDate(0, 0, i), sales, orders, domain.ProductELiquids, "")
	}
	return out
}

func TestWeeklyTwoFullWeeks(t *testing.T) {
	got := Weekly(flatRecords(14, 100, 2))

	require.Len(t, got, 2)
	assert.Equal(t, domain.WeekBucket{Label: "S1", Sales: 700, Orders: 14}, got[0])
	assert.Equal(t, domain.WeekBucket{Label: "S2", Sales: 700, Orders: 14}, got[1])
}

func TestWeeklyPartialLastWeek(t *testing.T) {
	got := Weekly(flatRecords(16, 10, 1))

	require.Len(t, got, 3)
	assert.Equal(t, "S3", got[2].Label)
	assert.Equal(t, 20.0, got[2].Sales)
	assert.Equal(t, 2, got[2].Orders)
}

func TestWeeklyEmpty(t *testing.T) {
	assert.Empty(t, Weekly(nil))
}

func TestCumulative(t *testing.T) {
	records := flatRecords(4, 250, 5)

	got := Cumulative(records, 2000)

	require.Len(t, got, 4)
	for i, p := range got {
		assert.Equal(t, records[i].Date, p.Date)
		assert.Equal(t, float64(i+1)*250, p.Revenue)
		assert.Equal(t, float64(i+1)*500, p.Target)
	}
	assert.Equal(t, Summarize(records).TotalSales, got[3].Revenue)
}
