package sortable

// Int is a sortable wrapper for the built-in int type, ordered numerically.
// It satisfies Sortable[Int], so plain integers can key the ordered
// collections in this module:
//
//	tree := set.NewTree(sortable.Int(5), sortable.Int(3), sortable.Int(7))
//	// tree.Entries() yields 3, 5, 7.
//
// Convert back with a plain type conversion: int(value).
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
