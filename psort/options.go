package psort

import (
	"log/slog"
	"runtime"

	"github.com/alitto/pond/v2"
)

// defaultThreshold is the slice length below which sorting stays serial.
// Under this size the scratch buffer and pool scheduling cost more than the
// parallel phase saves.
const defaultThreshold = 2048

type config struct {
	workers   int
	threshold int
	fold      bool
	pool      pond.Pool
	logger    *slog.Logger
}

type Option func(*config)

// WithWorkers caps the number of concurrent workers. The default is
// runtime.GOMAXPROCS(0). Values below one are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithThreshold sets the slice length at which sorting goes parallel.
// Shorter slices sort serially on the calling goroutine. Values below one
// are ignored.
func WithThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.threshold = n
		}
	}
}

// WithFold switches to case-insensitive comparison (natural.CompareFold).
func WithFold() Option {
	return func(c *config) {
		c.fold = true
	}
}

// WithPool runs all tasks on a caller-owned pond pool instead of a pool
// created and stopped per call. The caller keeps responsibility for
// stopping it.
func WithPool(pool pond.Pool) Option {
	return func(c *config) {
		c.pool = pool
	}
}

// WithLogger routes debug logging to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		workers:   runtime.GOMAXPROCS(0),
		threshold: defaultThreshold,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
