package domain

import "time"

// Summary aggregates a record sequence. AverageOrderValue is NaN when the
// sequence carries no orders.
type Summary struct {
	TotalSales        float64
	TotalOrders       int
	AverageOrderValue float64
}

// ProductPerformance is the sales and order volume of one product category.
// It is derived on every read and never stored.
type ProductPerformance struct {
	Category string
	Sales    float64
	Orders   int
}

// WeekBucket sums seven consecutive records (by position, not calendar week).
type WeekBucket struct {
	Label  string
	Sales  float64
	Orders int
}

// CumulativePoint is one step of the running revenue series compared with
// a straight-line target.
type CumulativePoint struct {
	Date    time.Time
	Revenue float64
	Target  float64
}
