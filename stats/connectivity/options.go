package connectivity

import "github.com/rs/zerolog"

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger  zerolog.Logger
	grain   int
	workers int
}

func defaultConfig() config {
	return config{
		logger: zerolog.Nop(),
		grain:  defaultGrain,
	}
}

// defaultGrain is the number of series one sweep worker claims at a time.
const defaultGrain = 256

// WithLogger sets the logger for construction and usage diagnostics.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithGrain sets how many series a worker scores per claimed chunk.
// Values below 1 are ignored.
func WithGrain(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.grain = n
		}
	}
}

// WithWorkers caps the number of goroutines used by one sweep.
// Values below 1 mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = max(n, 0)
	}
}
