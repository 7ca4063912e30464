// Package sortable defines the ordering interface used by the sorted
// collections in this module, together with wrapper types for primitives.
//
// # Overview
//
// The package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int] and [String]. These types
// are designed to work as keys in ordered collections such as
// [github.com/amp-labs/natural-sort/set.Tree].
//
// The Sortable interface extends
// [github.com/amp-labs/natural-sort/compare.Comparable] by adding a LessThan
// method, providing both equality comparison and ordering.
//
// The String wrapper orders strings byte-wise. For natural order, where
// "file2" sorts before "file11", use the key types in
// [github.com/amp-labs/natural-sort/natural] instead; they implement the same
// interface.
//
// # Usage
//
// Use the provided wrapper types when you need sorted collections:
//
//	// Create a sorted set of integers
//	tree := set.NewTree[sortable.Int]()
//	tree.Add(sortable.Int(42))
//	tree.Add(sortable.Int(10))
//	tree.Add(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range tree.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Release struct {
//	    Channel string
//	    Build   int
//	}
//
//	func (r Release) Equals(other Release) bool {
//	    return r.Channel == other.Channel && r.Build == other.Build
//	}
//
//	func (r Release) LessThan(other Release) bool {
//	    if r.Channel != other.Channel {
//	        return r.Channel < other.Channel
//	    }
//	    return r.Build < other.Build
//	}
//
// Equals and LessThan must agree with each other: for any pair of values,
// exactly one of a.LessThan(b), b.LessThan(a), or a.Equals(b) should hold.
// Collections built on Sortable rely on that consistency.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Collections using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
