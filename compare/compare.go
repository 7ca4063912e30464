// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is a three-way comparison function. It returns a negative value
// when a orders before b, zero when the two rank the same, and a positive
// value when a orders after b. It has the same shape as the comparison
// functions accepted by the slices package, so any Comparator can be passed
// to slices.SortFunc and friends directly.
type Comparator[T any] func(a, b T) int

// Reverse returns a Comparator imposing the opposite ordering of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Chain combines comparators into a single Comparator that applies each one
// in turn, returning the first non-zero result. Later comparators act as
// tie-breaks for earlier ones. With no arguments the result ranks everything
// the same.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if ord := cmp(a, b); ord != 0 {
				return ord
			}
		}

		return 0
	}
}

// FromLessThan builds a Comparator from a strict less-than relation, ranking
// two values the same when neither orders before the other. It bridges types
// that express ordering as a predicate, such as sortable.Sortable's LessThan
// method, into three-way comparison sites.
func FromLessThan[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
