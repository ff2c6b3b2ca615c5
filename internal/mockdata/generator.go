// Package mockdata produces the demo records and campaigns shown before any
// real data has been entered.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"mesa-kpi/internal/core/domain"
)

// Sales and order ranges of generated records, lower bound inclusive.
const (
	minSales  = 2000.0
	salesSpan = 5000.0
	minOrders = 20
	ordSpan   = 50
)

// Source supplies randomness to the generator. *rand.Rand satisfies it;
// tests pass deterministic implementations.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns a Source seeded with seed, or with the current time when
// seed is zero.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Options describes one generated sequence.
type Options struct {
	// Days is the number of records, one per consecutive day.
	Days int
	// Start is the date of the first record.
	Start time.Time
	// IDPrefix is prepended to the record index to build its ID.
	IDPrefix string
	// Categories and Campaigns are the labels drawn uniformly per record.
	Categories []string
	Campaigns  []string
}

// Generator builds randomized daily records.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate returns exactly opts.Days records with consecutive ascending
// dates starting at opts.Start.
func (g *Generator) Generate(opts Options) []domain.DailyRecord {
	start := truncateDay(opts.Start)
	out := make([]domain.DailyRecord, 0, opts.Days)
	for i := 0; i < opts.Days; i++ {
		sales := g.src.Float64()*salesSpan + minSales
		orders := g.src.Intn(ordSpan) + minOrders
		out = append(out, domain.NewDailyRecord(
			fmt.Sprintf("%s%d", opts.IDPrefix, i),
			start.AddDate(0, 0, i),
			sales,
			orders,
			g.pick(opts.Categories),
			g.pick(opts.Campaigns),
		))
	}
	return out
}

// Dashboard returns the overview sequence: days records ending today.
func (g *Generator) Dashboard(days int, today time.Time) []domain.DailyRecord {
	return g.Generate(Options{
		Days:       days,
		Start:      truncateDay(today).AddDate(0, 0, -(days - 1)),
		IDPrefix:   "mock-",
		Categories: []string{domain.ProductELiquids, domain.ProductElectronicCigarets, domain.ProductAccessories},
		Campaigns:  []string{"Promo été", "Black Friday", domain.DefaultCampaignName},
	})
}

// Operation returns the sequence of a single campaign starting on its start
// date, every record attributed to that campaign.
func (g *Generator) Operation(c domain.Campaign, days int) []domain.DailyRecord {
	return g.Generate(Options{
		Days:       days,
		Start:      c.StartDate,
		IDPrefix:   "op-",
		Categories: []string{domain.ProductELiquids},
		Campaigns:  []string{c.Name},
	})
}

func (g *Generator) pick(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[g.src.Intn(len(labels))]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
