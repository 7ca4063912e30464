package sortable

import (
	"github.com/amp-labs/natural-sort/compare"
)

// Sortable is the interface for types that have a total order. It combines
// equality from compare.Comparable with a strict less-than relation.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
