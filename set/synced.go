package set

import (
	"sync"
)

// Synced wraps a Strings set with a read-write mutex so independent
// goroutines can share it. Write operations take the exclusive lock; read
// operations share the read lock. Returned slices are snapshots and remain
// valid after later mutations.
type Synced struct {
	mutex    sync.RWMutex
	internal *Strings
}

// NewSynced creates a goroutine-safe string set holding the given elements.
func NewSynced(elements ...string) *Synced {
	return &Synced{
		internal: NewStrings(elements...),
	}
}

// Add inserts a single element under the exclusive lock.
func (s *Synced) Add(element string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.internal.Add(element)
}

// AddAll inserts multiple elements under the exclusive lock.
func (s *Synced) AddAll(elements ...string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.internal.AddAll(elements...)
}

// Remove deletes an element under the exclusive lock.
func (s *Synced) Remove(element string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.internal.Remove(element)
}

// Clear removes all elements under the exclusive lock.
func (s *Synced) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.internal.Clear()
}

// Contains reports whether the element is in the set.
func (s *Synced) Contains(element string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.internal.Contains(element)
}

// Size returns the number of elements in the set.
func (s *Synced) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.internal.Size()
}

// Entries returns a snapshot of all elements. The order is not guaranteed.
func (s *Synced) Entries() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.internal.Entries()
}

// SortedEntries returns a lexically sorted snapshot of all elements.
func (s *Synced) SortedEntries() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.internal.SortedEntries()
}

// NaturalSortedEntries returns a snapshot of all elements in natural sort
// order.
func (s *Synced) NaturalSortedEntries() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.internal.NaturalSortedEntries()
}
