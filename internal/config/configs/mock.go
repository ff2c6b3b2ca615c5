package configs

// Mock sizes and seeds the generated demo data.
type Mock struct {
	// Seed feeds the random source. Zero picks a time-based seed, so each
	// start (and reset) shows different figures.
	Seed int64 `env:"SEED" envDefault:"0"`
	// DashboardDays is the length of the overview sequence.
	DashboardDays int `env:"DASHBOARD_DAYS" envDefault:"30"`
	// OperationDays is the length of each campaign sequence.
	OperationDays int `env:"OPERATION_DAYS" envDefault:"60"`
}
