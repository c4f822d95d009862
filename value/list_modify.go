package value

import "sort"

// AppendCell appends v (deep-copying it if it is itself a container) and
// returns the receiver for chaining.
func (l *List) AppendCell(v Cell) *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureCapacityLocked(len(l.items) + 1)
	l.items = append(l.items, v.cloneDeep())
	return l
}

// PrependCell inserts v at the front.
func (l *List) PrependCell(v Cell) *List {
	return l.InsertCell(0, v)
}

// InsertCell inserts v at element index: negative indices
// clamp to 0 (which is how "insert(-1, x)" becomes a prepend, matching
// the preserved historical behavior); indices >= length clamp to length
// (append).
func (l *List) InsertCell(index int, v Cell) *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	l.ensureCapacityLocked(len(l.items) + 1)
	l.items = append(l.items, Cell{})
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v.cloneDeep()
	return l
}

// Typed append/prepend/insert wrappers: one per primitive and container
// kind, implemented as thin Cell-constructing wrappers over the three
// Cell-level primitives above rather than duplicating insertion logic
// seven times over.

func (l *List) AppendBool(v bool) *List       { return l.AppendCell(BoolCell(v)) }
func (l *List) AppendInt(v int32) *List       { return l.AppendCell(IntCell(v)) }
func (l *List) AppendFloat(v float32) *List   { return l.AppendCell(FloatCell(v)) }
func (l *List) AppendString(v *String) *List  { return l.AppendCell(StringCell(v)) }
func (l *List) AppendList(v *List) *List      { return l.AppendCell(ListCell(v)) }
func (l *List) AppendMap(v *Map) *List        { return l.AppendCell(MapCell(v)) }
func (l *List) AppendSet(v *Set) *List        { return l.AppendCell(SetCell(v)) }
func (l *List) AppendNull() *List             { return l.AppendCell(Null()) }

func (l *List) PrependBool(v bool) *List      { return l.PrependCell(BoolCell(v)) }
func (l *List) PrependInt(v int32) *List      { return l.PrependCell(IntCell(v)) }
func (l *List) PrependFloat(v float32) *List  { return l.PrependCell(FloatCell(v)) }
func (l *List) PrependString(v *String) *List { return l.PrependCell(StringCell(v)) }
func (l *List) PrependList(v *List) *List     { return l.PrependCell(ListCell(v)) }
func (l *List) PrependMap(v *Map) *List       { return l.PrependCell(MapCell(v)) }
func (l *List) PrependSet(v *Set) *List       { return l.PrependCell(SetCell(v)) }

func (l *List) InsertBool(i int, v bool) *List      { return l.InsertCell(i, BoolCell(v)) }
func (l *List) InsertInt(i int, v int32) *List      { return l.InsertCell(i, IntCell(v)) }
func (l *List) InsertFloat(i int, v float32) *List  { return l.InsertCell(i, FloatCell(v)) }
func (l *List) InsertString(i int, v *String) *List { return l.InsertCell(i, StringCell(v)) }
func (l *List) InsertListAt(i int, v *List) *List   { return l.InsertCell(i, ListCell(v)) }
func (l *List) InsertMap(i int, v *Map) *List        { return l.InsertCell(i, MapCell(v)) }
func (l *List) InsertSet(i int, v *Set) *List        { return l.InsertCell(i, SetCell(v)) }

// Set replaces the element at i; on an empty list it appends instead.
// i otherwise clamps into [0, length-1].
func (l *List) Set(i int, v Cell) *List {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.ensureCapacityLocked(1)
		l.items = append(l.items, v.cloneDeep())
		l.mu.Unlock()
		return l
	}
	i = clampReadIndex(i, len(l.items))
	l.items[i] = v.cloneDeep()
	l.mu.Unlock()
	return l
}

// Remove deletes the element at i (clamped into [0, length-1]); a no-op
// on an empty list.
func (l *List) Remove(i int) *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return l
	}
	i = clampReadIndex(i, len(l.items))
	copy(l.items[i:], l.items[i+1:])
	l.items = l.items[:len(l.items)-1]
	return l
}

// popLastLocked removes and returns the last cell, or (Null, false) if
// empty. Caller must hold l.mu.
func (l *List) popLastLocked() (Cell, bool) {
	if len(l.items) == 0 {
		return Null(), false
	}
	last := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	return last, true
}

func (l *List) PopBool() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok {
		return false
	}
	f, numOk := numericKey(c)
	return numOk && f != 0
}

func (l *List) PopInt() int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok {
		return 0
	}
	f, numOk := numericKey(c)
	if !numOk {
		return 0
	}
	return int32(f)
}

func (l *List) PopFloat() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok {
		return 0
	}
	f, numOk := numericKey(c)
	if !numOk {
		return 0
	}
	return float32(f)
}

func (l *List) PopString() *String {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok || c.kind != KindString {
		return NewString()
	}
	return c.s
}

func (l *List) PopList() *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok || c.kind != KindList {
		return NewList()
	}
	return c.l
}

func (l *List) PopMap() *Map {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok || c.kind != KindMap {
		return NewMap()
	}
	return c.m
}

func (l *List) PopSet() *Set {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.popLastLocked()
	if !ok || c.kind != KindSet {
		return NewSet()
	}
	return c.st
}

// Reverse reverses the list in place.
func (l *List) Reverse() *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	return l
}

// Concat appends every element of other in order (ConcatSet is the
// variant that takes a *Set). Nested containers are deep-copied as
// usual on insertion. The second container is only ever read
// (snapshotted) here, never locked alongside the receiver's writer lock.
func (l *List) Concat(other *List) *List {
	items := other.snapshot()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureCapacityLocked(len(l.items) + len(items))
	for _, c := range items {
		l.items = append(l.items, c.cloneDeep())
	}
	return l
}

// ConcatSet appends the values of a Set in its own iteration order.
func (l *List) ConcatSet(s *Set) *List {
	return l.Concat(s.ToList())
}

// Slice returns a new List holding deep copies of the half-open element
// range [start, end): negative start clamps to 0, end beyond length
// clamps to length, start >= end returns an empty list.
func (l *List) Slice(start, end int) *List {
	items := l.snapshot()
	length := len(items)
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	out := NewList()
	if start >= end || start >= length {
		return out
	}
	for _, c := range items[start:end] {
		out.AppendCell(c)
	}
	return out
}

// Sort orders the list ascending (or descending) in place using
// CompareForSort; a no-op on an empty list.
func (l *List) Sort(ascending bool) *List {
	l.mu.Lock()
	defer l.mu.Unlock()
	sort.Slice(l.items, func(i, j int) bool {
		c := CompareForSort(l.items[i], l.items[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return l
}
