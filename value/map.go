package value

import "sync"

// Map is an insertion-ordered key->value container, built on two parallel
// Lists (keys, values) of equal length. Key positions are
// stable: Put on an existing key overwrites the value without reordering.
type Map struct {
	mu     sync.RWMutex
	keys   *List
	values *List
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{keys: NewList(), values: NewList()}
}

// Length returns the number of entries.
func (m *Map) Length() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys.Length()
}

// IsEmpty reports whether the map has zero entries.
func (m *Map) IsEmpty() bool { return m.Length() == 0 }

// Duplicate returns a deep copy: fresh key/value lists with every element
// (including nested containers) independently copied.
func (m *Map) Duplicate() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &Map{keys: m.keys.Duplicate(), values: m.values.Duplicate()}
}

// Equal is position-wise: two maps are equal iff their keys and values
// lists are equal in the same order. Order-independent map equality is
// not promised.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.keys.Equal(o.keys) && m.values.Equal(o.values)
}

// findIndexLocked returns the index of k in m.keys, or -1. Caller must
// hold at least a read lock.
func (m *Map) findIndexLocked(k Cell) int {
	return m.keys.Find(k)
}

// PutCell inserts or overwrites k -> v. If k numeric-coercion-equals an
// existing key, that entry's value is replaced in place (key order
// unchanged); otherwise the pair is appended. Returns the receiver for
// chaining.
func (m *Map) PutCell(k, v Cell) *Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.findIndexLocked(k); idx >= 0 {
		m.values.Set(idx, v)
		return m
	}
	m.keys.AppendCell(k)
	m.values.AppendCell(v)
	return m
}

// PutString is the common case of a String key (the "every (keyTag x
// valueTag) combination" the C++ template surface covered collapses, in
// idiomatic Go, to one Cell-level Put plus ergonomic key-side wrappers).
func (m *Map) PutString(key *String, v Cell) *Map { return m.PutCell(StringCell(key), v) }

// PutInt is the common case of an Int key.
func (m *Map) PutInt(key int32, v Cell) *Map { return m.PutCell(IntCell(key), v) }

// HasKey reports whether k is present.
func (m *Map) HasKey(k Cell) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findIndexLocked(k) >= 0
}

// TypeAt returns the Kind of the value stored under k, or KindInvalid if
// absent.
func (m *Map) TypeAt(k Cell) Kind {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx := m.findIndexLocked(k)
	if idx < 0 {
		return KindInvalid
	}
	return m.values.TypeAt(idx)
}

// Get returns the stored value Cell for k, or Null if absent.
func (m *Map) Get(k Cell) Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx := m.findIndexLocked(k)
	if idx < 0 {
		return Null()
	}
	return m.values.At(idx)
}

func (m *Map) GetBool(k Cell) bool {
	f, ok := numericKey(m.Get(k))
	return ok && f != 0
}

func (m *Map) GetInt(k Cell) int32 {
	f, ok := numericKey(m.Get(k))
	if !ok {
		return 0
	}
	return int32(f)
}

func (m *Map) GetFloat(k Cell) float32 {
	f, ok := numericKey(m.Get(k))
	if !ok {
		return 0
	}
	return float32(f)
}

func (m *Map) GetString(k Cell) *String {
	c := m.Get(k)
	if c.kind != KindString {
		return NewString()
	}
	return c.s
}

func (m *Map) GetList(k Cell) *List {
	c := m.Get(k)
	if c.kind != KindList {
		return NewList()
	}
	return c.l
}

func (m *Map) GetMap(k Cell) *Map {
	c := m.Get(k)
	if c.kind != KindMap {
		return NewMap()
	}
	return c.m
}

func (m *Map) GetSet(k Cell) *Set {
	c := m.Get(k)
	if c.kind != KindSet {
		return NewSet()
	}
	return c.st
}

// Remove deletes the entry for k, if present.
func (m *Map) Remove(k Cell) *Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.findIndexLocked(k)
	if idx < 0 {
		return m
	}
	m.keys.Remove(idx)
	m.values.Remove(idx)
	return m
}

// Clear removes every entry.
func (m *Map) Clear() *Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = NewList()
	m.values = NewList()
	return m
}

// Keys returns a fresh List of the map's keys in insertion order.
func (m *Map) Keys() *List {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys.Duplicate()
}

// Values returns a fresh List of the map's values in insertion order.
func (m *Map) Values() *List {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values.Duplicate()
}

// Merge performs PutCell for every entry in other; last-writer-wins on
// collisions. other is only ever read (snapshotted as keys/values lists);
// the receiver's writer lock and other's reader lock are never held at
// once.
func (m *Map) Merge(other *Map) *Map {
	if other == nil {
		return m
	}
	otherKeys := other.Keys().snapshot()
	otherValues := other.Values().snapshot()
	for i := range otherKeys {
		m.PutCell(otherKeys[i], otherValues[i])
	}
	return m
}

// FindValueKey is the reverse lookup: the key whose value numeric-coerced
// equals v, or Null if none does.
func (m *Map) FindValueKey(v Cell) Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx := m.values.Find(v)
	if idx < 0 {
		return Null()
	}
	return m.keys.At(idx)
}
