// Package psort sorts large string slices in natural order on a worker pool.
//
// The comparator in package natural is pure and synchronous; psort is the
// concurrency adapter around it. Slices below a size threshold are sorted
// serially on the calling goroutine. Larger slices are split into near-equal
// sections, each section is sorted as a pool task, and the sorted sections
// are merged pairwise in parallel rounds until one section spans the whole
// slice. The output is deterministic and identical to natural.Sort on the
// same input.
package psort

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/natural-sort/natural"
)

// Sort sorts items in place in natural order. See SortCtx.
func Sort(items []string, opts ...Option) error {
	return SortCtx(context.Background(), items, opts...)
}

// SortCtx sorts items in place in natural order, going parallel when the
// slice is long enough to benefit. Cancelling ctx abandons the sort between
// parallel phases; on error items still holds every element, in unspecified
// order.
func SortCtx(ctx context.Context, items []string, opts ...Option) error {
	cfg := newConfig(opts...)

	cmp := natural.Compare[string]
	if cfg.fold {
		cmp = natural.CompareFold[string]
	}

	totalSorts.Inc()
	totalItems.Add(int64(len(items)))

	if len(items) < cfg.threshold || cfg.workers < 2 {
		start := time.Now()

		slices.SortFunc(items, cmp)

		sortsTotal.WithLabelValues(modeSerial).Inc()
		itemsSorted.Add(float64(len(items)))
		sortDuration.Observe(time.Since(start).Seconds())

		return nil
	}

	return parallelSort(ctx, items, cmp, cfg)
}

func parallelSort(ctx context.Context, items []string, cmp func(a, b string) int, cfg *config) error {
	ctx, span := startSortSpan(ctx, len(items), cfg.workers)
	defer span.End()

	start := time.Now()

	parallelSorts.Inc()
	parallelInFlight.Inc()

	defer parallelInFlight.Dec()

	pool := cfg.pool
	if pool == nil {
		pool = pond.NewPool(cfg.workers)
		defer pool.StopAndWait()
	}

	sections := split(len(items), cfg.workers)

	cfg.logger.DebugContext(ctx, "sorting in parallel",
		"items", len(items), "workers", cfg.workers, "sections", len(sections))

	if err := sortSections(ctx, pool, items, sections, cmp); err != nil {
		return spanError(span, err)
	}

	if err := mergeSections(ctx, pool, items, sections, cmp); err != nil {
		return spanError(span, err)
	}

	sortsTotal.WithLabelValues(modeParallel).Inc()
	itemsSorted.Add(float64(len(items)))
	sortDuration.Observe(time.Since(start).Seconds())

	cfg.logger.DebugContext(ctx, "parallel sort finished",
		"items", len(items), "elapsed", time.Since(start))

	return nil
}

// sortSections sorts each section of items in place, one pool task per
// section.
func sortSections(
	ctx context.Context,
	pool pond.Pool,
	items []string,
	sections []section,
	cmp func(a, b string) int,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sorting sections: %w", err)
	}

	tasks := make([]pond.Task, 0, len(sections))

	for _, s := range sections {
		tasks = append(tasks, pool.Submit(func() {
			slices.SortFunc(items[s.lo:s.hi], cmp)
		}))
	}

	if err := waitAll(tasks); err != nil {
		return fmt.Errorf("sorting sections: %w", err)
	}

	return nil
}

// mergeSections repeatedly merges adjacent sorted sections until one spans
// the whole slice. Rounds ping-pong between items and a scratch buffer;
// within a round each pair merge is a separate pool task. An odd trailing
// section is carried over unchanged.
func mergeSections(
	ctx context.Context,
	pool pond.Pool,
	items []string,
	sections []section,
	cmp func(a, b string) int,
) error {
	if len(sections) < 2 {
		return nil
	}

	scratch := make([]string, len(items))
	src, dst := items, scratch
	swapped := false

	// src always holds a complete permutation of items, so on failure a
	// copy-back keeps the caller's slice intact.
	restore := func(err error) error {
		if swapped {
			copy(items, src)
		}

		return fmt.Errorf("merging sections: %w", err)
	}

	for len(sections) > 1 {
		if err := ctx.Err(); err != nil {
			return restore(err)
		}

		next := make([]section, 0, (len(sections)+1)/2)
		tasks := make([]pond.Task, 0, len(sections)/2)

		for i := 0; i+1 < len(sections); i += 2 {
			a, b := sections[i], sections[i+1]
			next = append(next, section{lo: a.lo, hi: b.hi})

			tasks = append(tasks, pool.Submit(func() {
				mergeInto(dst[a.lo:b.hi], src[a.lo:a.hi], src[b.lo:b.hi], cmp)
			}))
		}

		if len(sections)%2 == 1 {
			last := sections[len(sections)-1]
			copy(dst[last.lo:last.hi], src[last.lo:last.hi])
			next = append(next, last)
		}

		if err := waitAll(tasks); err != nil {
			return restore(err)
		}

		sections = next
		src, dst = dst, src
		swapped = !swapped
	}

	if swapped {
		copy(items, src)
	}

	return nil
}

// section is a half-open index range into the slice being sorted.
type section struct {
	lo, hi int
}

// split divides n items into at most parts contiguous sections of near-equal
// length.
func split(n, parts int) []section {
	if n < 1 {
		return nil
	}

	if parts > n {
		parts = n
	}

	sections := make([]section, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0

	for i := range parts {
		hi := lo + size
		if i < rem {
			hi++
		}

		sections = append(sections, section{lo: lo, hi: hi})
		lo = hi
	}

	return sections
}

// mergeInto merges the sorted slices a and b into dst, which must have
// length len(a)+len(b). Ties favor a, keeping the merge stable.
func mergeInto(dst, a, b []string, cmp func(x, y string) int) {
	i, j, k := 0, 0, 0

	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}

		k++
	}

	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// waitAll blocks until every task finishes and returns the first failure.
// Tasks in one round read and write overlapping buffers, so even after one
// fails the rest must drain before the caller touches the slice again. pond
// recovers panics inside tasks and surfaces them here as errors.
func waitAll(tasks []pond.Task) error {
	var firstErr error

	for _, task := range tasks {
		if err := task.Wait(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
