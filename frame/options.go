package frame

import (
	"log/slog"
	"time"
)

// DefaultStatsEvery is how many frames pass between statistics log lines.
const DefaultStatsEvery = 120

// Option configures a Driver.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	now        func() time.Time
	statsEvery int
}

// WithLogger sets the logger. The default is pixfx.Logger() at the time
// NewDriver is called.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for frame timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithStatsEvery sets the statistics log interval in frames.
// Zero or a negative value disables the periodic log line.
func WithStatsEvery(n int) Option {
	return func(o *options) {
		o.statsEvery = n
	}
}
