package psort

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

const (
	modeSerial   = "serial"
	modeParallel = "parallel"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "psort_sorts_total",
		Help: "The total number of completed sorts, by execution mode",
	}, []string{"mode"})

	itemsSorted = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "psort_items_sorted_total",
		Help: "The total number of items sorted",
	})

	sortDuration = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "psort_duration_seconds",
		Help:    "Wall-clock duration of sorts",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})

	parallelInFlight = promauto.NewGauge(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "psort_parallel_in_flight",
		Help: "The number of parallel sorts currently executing",
	})
)

// Live counters behind Stats. The prometheus collectors above serve scrapes;
// these serve direct inspection from code.
//
//nolint:gochecknoglobals
var (
	totalSorts    = atomic.NewInt64(0)
	totalItems    = atomic.NewInt64(0)
	parallelSorts = atomic.NewInt64(0)
)

// SortStats is a point-in-time snapshot of the package-wide counters.
type SortStats struct {
	// Sorts counts every Sort and SortCtx call.
	Sorts int64

	// Items counts elements across all calls.
	Items int64

	// ParallelSorts counts the calls that took the parallel path.
	ParallelSorts int64
}

// Stats reports how much work the package has done since process start.
func Stats() SortStats {
	return SortStats{
		Sorts:         totalSorts.Load(),
		Items:         totalItems.Load(),
		ParallelSorts: parallelSorts.Load(),
	}
}
