package set

import (
	"slices"

	"github.com/amp-labs/natural-sort/natural"
)

// Strings is a collection of unique strings. The zero value is not usable;
// create one with NewStrings. Strings is not safe for concurrent use; see
// Synced for a goroutine-safe wrapper.
type Strings struct {
	elements map[string]struct{}
}

// NewStrings creates a Strings set holding the given elements.
func NewStrings(elements ...string) *Strings {
	s := &Strings{
		elements: make(map[string]struct{}, len(elements)),
	}

	s.AddAll(elements...)

	return s
}

// Add inserts a single element. Adding an element that is already present
// leaves the set unchanged.
func (s *Strings) Add(element string) {
	s.elements[element] = struct{}{}
}

// AddAll inserts multiple elements.
func (s *Strings) AddAll(elements ...string) {
	for _, element := range elements {
		s.Add(element)
	}
}

// Remove deletes an element. Removing an absent element is a no-op.
func (s *Strings) Remove(element string) {
	delete(s.elements, element)
}

// Contains reports whether the element is in the set.
func (s *Strings) Contains(element string) bool {
	_, ok := s.elements[element]

	return ok
}

// Size returns the number of elements in the set.
func (s *Strings) Size() int {
	return len(s.elements)
}

// Clear removes all elements from the set.
func (s *Strings) Clear() {
	s.elements = make(map[string]struct{})
}

// Entries returns all elements as a fresh slice. The order is not guaranteed.
func (s *Strings) Entries() []string {
	items := make([]string, 0, len(s.elements))
	for item := range s.elements {
		items = append(items, item)
	}

	return items
}

// SortedEntries returns all elements sorted lexically.
func (s *Strings) SortedEntries() []string {
	items := s.Entries()

	slices.Sort(items)

	return items
}

// NaturalSortedEntries returns all elements in natural sort order, where
// numbers embedded in the strings compare by value: "file2" comes before
// "file10".
func (s *Strings) NaturalSortedEntries() []string {
	items := s.Entries()

	natural.Sort(items)

	return items
}

// Union returns a new set containing all elements from both sets.
func (s *Strings) Union(other *Strings) *Strings {
	out := NewStrings(s.Entries()...)

	out.AddAll(other.Entries()...)

	return out
}

// Intersection returns a new set containing only elements present in both
// sets.
func (s *Strings) Intersection(other *Strings) *Strings {
	out := NewStrings()

	for item := range s.elements {
		if other.Contains(item) {
			out.Add(item)
		}
	}

	return out
}

// Clone returns a copy of the set.
func (s *Strings) Clone() *Strings {
	return NewStrings(s.Entries()...)
}
