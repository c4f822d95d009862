package value

import "sync"

// Set is a unique-value collection backed by a List, guarded by its own
// reader/writer lock. "Unique" applies only to comparable primitives and
// Strings (numeric-coerced Cell equality); nested containers are appended
// unconditionally, so a Set of containers is an append-only bag: container
// equality is never defined here, so container elements are never deduped
// and never compared equal to anything during Contains/Intersect/Equal.
type Set struct {
	mu    sync.RWMutex
	items *List
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{items: NewList()}
}

func isContainerKind(k Kind) bool {
	return k == KindList || k == KindMap || k == KindSet
}

// Length returns the element count.
func (s *Set) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Length()
}

// IsEmpty reports whether the set has zero elements.
func (s *Set) IsEmpty() bool { return s.Length() == 0 }

// Duplicate returns a deep copy.
func (s *Set) Duplicate() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Set{items: s.items.Duplicate()}
}

// Equal reports whether s and o have the same length and every primitive
// element of one is contained in the other (order-independent for
// primitives). Container-valued elements never contribute to the
// comparison beyond their count.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	as := s.items.snapshot()
	bs := o.items.snapshot()
	if len(as) != len(bs) {
		return false
	}
	for _, c := range as {
		if isContainerKind(c.kind) {
			continue
		}
		if o.containsLocked(bs, c) < 0 {
			return false
		}
	}
	return true
}

func (s *Set) containsLocked(items []Cell, v Cell) int {
	for i, c := range items {
		if CellEqual(c, v) {
			return i
		}
	}
	return -1
}

// Put inserts v: comparable primitives/Strings only when not already
// present (numeric-coerced equality); containers are always appended.
func (s *Set) Put(v Cell) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !isContainerKind(v.kind) && s.items.Contains(v) {
		return s
	}
	s.items.AppendCell(v)
	return s
}

// Contains reports membership via numeric-coerced Cell equality.
// Container-valued cells never match (per Intersect/Equal's resolution),
// since equality is never defined for them here.
func (s *Set) Contains(v Cell) bool {
	if isContainerKind(v.kind) {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Contains(v)
}

// Remove deletes every stored element equal to v.
func (s *Set) Remove(v Cell) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		idx := s.items.Find(v)
		if idx < 0 {
			break
		}
		s.items.Remove(idx)
	}
	return s
}

// Clear removes every element.
func (s *Set) Clear() *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = NewList()
	return s
}

// ToList returns a fresh List holding the set's elements in iteration
// (insertion) order.
func (s *Set) ToList() *List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Duplicate()
}

// Union inserts every element of other (subject to the same dedup rule
// as Put). other is only ever snapshotted, never locked alongside
// the receiver.
func (s *Set) Union(other *Set) *Set {
	for _, c := range other.ToList().snapshot() {
		s.Put(c)
	}
	return s
}

// Intersect retains only the comparable-primitive elements that other
// also contains; nested-container elements are always discarded, since
// container equality is undefined.
func (s *Set) Intersect(other *Set) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := NewList()
	for _, c := range s.items.snapshot() {
		if isContainerKind(c.kind) {
			continue
		}
		if other.Contains(c) {
			kept.AppendCell(c)
		}
	}
	s.items = kept
	return s
}

// Subtract removes every element of other that is a comparable
// primitive; subtracting a set from itself clears it.
func (s *Set) Subtract(other *Set) *Set {
	if other == s {
		return s.Clear()
	}
	for _, c := range other.ToList().snapshot() {
		if isContainerKind(c.kind) {
			continue
		}
		s.Remove(c)
	}
	return s
}
