package kpi

import (
	"slices"
	"sort"

	"mesa-kpi/internal/core/domain"
)

// Insert returns a new sequence holding records plus r, sorted ascending by
// date. records must already be sorted and is not modified. A record whose
// date equals existing ones is placed after them.
func Insert(records []domain.DailyRecord, r domain.DailyRecord) []domain.DailyRecord {
	i := sort.Search(len(records), func(i int) bool {
		return records[i].Date.After(r.Date)
	})
	out := make([]domain.DailyRecord, 0, len(records)+1)
	out = append(out, records...)
	return slices.Insert(out, i, r)
}

// SortByDate stably sorts records ascending by date in place.
func SortByDate(records []domain.DailyRecord) {
	slices.SortStableFunc(records, func(a, b domain.DailyRecord) int {
		return a.Date.Compare(b.Date)
	})
}
