package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process logger. Level takes slog level names
// ("debug", "info", "warn", "error", with optional offsets such as
// "info+2"); unknown names log at info. Format selects the "json"
// handler, anything else writes text.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

func (c Logger) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// JSON reports whether the JSON handler is selected.
func (c Logger) JSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), "json")
}

// NewLogger builds a logger writing to w with the configured level and
// format.
func (c Logger) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.JSON() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
