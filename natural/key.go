package natural

import (
	"github.com/amp-labs/natural-sort/sortable"
)

// String is a string ordered naturally. It implements sortable.Sortable, so
// it can key ordered collections like set.Tree directly, and its Compare
// method expression can be handed to slices.SortFunc.
type String string

// Compile-time check that String implements Sortable[String].
var _ sortable.Sortable[String] = (*String)(nil)

// Compare returns the three-way natural ordering of s and other.
func (s String) Compare(other String) int {
	return Compare(s, other)
}

// Equals reports whether s and other are identical. Natural order without
// folding never reports distinct strings equal, so plain equality agrees
// with Compare returning zero.
func (s String) Equals(other String) bool {
	return s == other
}

// LessThan reports whether s orders strictly before other.
func (s String) LessThan(other String) bool {
	return Compare(s, other) < 0
}

// FoldedString is a string ordered naturally with ASCII letter case folded.
// Two FoldedStrings differing only in case are equal, so an ordered
// collection keyed on FoldedString holds one entry per case-insensitive
// spelling.
type FoldedString string

// Compile-time check that FoldedString implements Sortable[FoldedString].
var _ sortable.Sortable[FoldedString] = (*FoldedString)(nil)

// Compare returns the three-way case-folded natural ordering of s and other.
func (s FoldedString) Compare(other FoldedString) int {
	return CompareFold(s, other)
}

// Equals reports whether s and other are equal up to ASCII letter case.
func (s FoldedString) Equals(other FoldedString) bool {
	return CompareFold(s, other) == 0
}

// LessThan reports whether s orders strictly before other.
func (s FoldedString) LessThan(other FoldedString) bool {
	return CompareFold(s, other) < 0
}

// Bytes is a byte slice ordered naturally. A Bytes value used as a key in an
// ordered collection must not be mutated while the collection holds it.
type Bytes []byte

// Compile-time check that Bytes implements Sortable[Bytes].
var _ sortable.Sortable[Bytes] = (*Bytes)(nil)

// Compare returns the three-way natural ordering of b and other.
func (b Bytes) Compare(other Bytes) int {
	return Compare(b, other)
}

// Equals reports whether b and other hold identical bytes.
func (b Bytes) Equals(other Bytes) bool {
	return Compare(b, other) == 0
}

// LessThan reports whether b orders strictly before other.
func (b Bytes) LessThan(other Bytes) bool {
	return Compare(b, other) < 0
}

// FoldedBytes is a byte slice ordered naturally with ASCII letter case
// folded. Like Bytes, it must not be mutated while held as a key.
type FoldedBytes []byte

// Compile-time check that FoldedBytes implements Sortable[FoldedBytes].
var _ sortable.Sortable[FoldedBytes] = (*FoldedBytes)(nil)

// Compare returns the three-way case-folded natural ordering of b and other.
func (b FoldedBytes) Compare(other FoldedBytes) int {
	return CompareFold(b, other)
}

// Equals reports whether b and other are equal up to ASCII letter case.
func (b FoldedBytes) Equals(other FoldedBytes) bool {
	return CompareFold(b, other) == 0
}

// LessThan reports whether b orders strictly before other.
func (b FoldedBytes) LessThan(other FoldedBytes) bool {
	return CompareFold(b, other) < 0
}
