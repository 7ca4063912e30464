package natural

import (
	"slices"

	"github.com/amp-labs/natural-sort/compare"
)

// Sort sorts items in place in ascending natural order. The sort is
// unstable, which cannot be observed for string elements: without folding
// the comparator only reports two elements equal when they are identical.
func Sort[S ~string | ~[]byte](items []S) {
	slices.SortFunc(items, Compare[S])
}

// SortFold sorts items in place in ascending natural order with ASCII letter
// case folded. Elements differing only in case compare equal and may appear
// in either order; SortStable keeps their original order when that matters.
func SortFold[S ~string | ~[]byte](items []S) {
	slices.SortFunc(items, CompareFold[S])
}

// SortStable is the stable variant of Sort. For string elements the result
// is indistinguishable from Sort; for byte-slice elements it preserves the
// original order of distinct slices holding equal bytes.
func SortStable[S ~string | ~[]byte](items []S) {
	slices.SortStableFunc(items, Compare[S])
}

// SortDesc sorts items in place in descending natural order.
func SortDesc[S ~string | ~[]byte](items []S) {
	slices.SortFunc(items, compare.Reverse[S](Compare[S]))
}

// SortBy sorts items in place by the natural order of key(item), calling key
// once per comparison. The sort is unstable; items with equal keys may
// appear in any order.
func SortBy[E any, S ~string | ~[]byte](items []E, key func(E) S) {
	slices.SortFunc(items, func(x, y E) int {
		return Compare(key(x), key(y))
	})
}

// SortStableBy is the stable variant of SortBy: items with equal keys keep
// their original relative order.
func SortStableBy[E any, S ~string | ~[]byte](items []E, key func(E) S) {
	slices.SortStableFunc(items, func(x, y E) int {
		return Compare(key(x), key(y))
	})
}

// SortByCached sorts like SortStableBy but calls key exactly once per item
// instead of once per comparison, trading a few allocations for fewer key
// calls. Use it when the key projection is expensive.
func SortByCached[E any, S ~string | ~[]byte](items []E, key func(E) S) {
	keys := make([]S, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(x, y int) int {
		return Compare(keys[x], keys[y])
	})

	sorted := make([]E, len(items))
	for i, idx := range order {
		sorted[i] = items[idx]
	}

	copy(items, sorted)
}

// IsSorted reports whether items are in ascending natural order.
func IsSorted[S ~string | ~[]byte](items []S) bool {
	return slices.IsSortedFunc(items, Compare[S])
}

// IsSortedFold reports whether items are in ascending natural order with
// ASCII letter case folded.
func IsSortedFold[S ~string | ~[]byte](items []S) bool {
	return slices.IsSortedFunc(items, CompareFold[S])
}
