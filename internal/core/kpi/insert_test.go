package kpi

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-kpi/internal/core/domain"
)

func TestInsertKeepsOrderAndRecords(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	start := day("2024-01-01")

	for round := 0; round < 50; round++ {
		records := make([]domain.DailyRecord, r.Intn(20))
		for i := range records {
			records[i] = domain.DailyRecord{ID: string(rune('a' + i)), Date: start.AddDate(0, 0, r.Intn(30))}
		}
		SortByDate(records)
		before := slices.Clone(records)

		added := domain.DailyRecord{ID: "new", Date: start.AddDate(0, 0, r.Intn(30))}
		got := Insert(records, added)

		require.Len(t, got, len(records)+1)
		for i := 1; i < len(got); i++ {
			require.False(t, got[i].Date.Before(got[i-1].Date), "sequence not sorted at %d", i)
		}
		assert.ElementsMatch(t, append(before, added), got)
		assert.Equal(t, before, records, "input must not be modified")
	}
}

func TestInsertAfterEqualDates(t *testing.T) {
	d := day("2024-06-02")
	records := []domain.DailyRecord{
		{ID: "1", Date: day("2024-06-01")},
		{ID: "2", Date: d},
		{ID: "3", Date: day("2024-06-03")},
	}

	got := Insert(records, domain.DailyRecord{ID: "new", Date: d})

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"1", "2", "new", "3"}, ids)
}

func TestInsertIntoEmpty(t *testing.T) {
	got := Insert(nil, domain.DailyRecord{ID: "x"})
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestZeroOrdersRecordIsAccepted(t *testing.T) {
	r := domain.NewDailyRecord("z", day("2024-06-01"), 1000, 0, domain.ProductPods, "")
	assert.True(t, math.IsInf(r.AverageOrderValue, 1))

	r = domain.NewDailyRecord("z", day("2024-06-01"), 0, 0, domain.ProductPods, "")
	assert.True(t, math.IsNaN(r.AverageOrderValue))

	got := Insert(nil, r)
	assert.Len(t, got, 1)
}
