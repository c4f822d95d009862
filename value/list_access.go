package value

// clampReadIndex implements the read-path negative-index rule described for
// List: negative indices clamp to the nearest valid position (never wrap).
func clampReadIndex(i, length int) int {
	if i < 0 {
		i = 0
	}
	if i >= length {
		i = length - 1
	}
	return i
}

// At returns a deep copy of the element at element index i (negative
// clamps to 0, too-large clamps to the last element); an empty list
// returns the Null cell. Retrieved nested containers are independent
// copies.
func (l *List) At(i int) Cell {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.items) == 0 {
		return Null()
	}
	i = clampReadIndex(i, len(l.items))
	return l.items[i].cloneDeep()
}

// TypeAt returns the Kind stored at i, or KindInvalid if the list is empty
// (there is nothing to clamp to).
func (l *List) TypeAt(i int) Kind {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.items) == 0 {
		return KindInvalid
	}
	i = clampReadIndex(i, len(l.items))
	return l.items[i].kind
}

// AtBool, AtInt, AtFloat coerce via the shared numeric-coercion rule;
// AtString/AtList/AtMap/AtSet return zero values (empty/nil-backed
// handles) on a kind mismatch, never nil pointers, so callers can chain
// safely.
func (l *List) AtBool(i int) bool {
	f, ok := numericKey(l.At(i))
	return ok && f != 0
}

func (l *List) AtInt(i int) int32 {
	f, ok := numericKey(l.At(i))
	if !ok {
		return 0
	}
	return int32(f)
}

func (l *List) AtFloat(i int) float32 {
	f, ok := numericKey(l.At(i))
	if !ok {
		return 0
	}
	return float32(f)
}

func (l *List) AtString(i int) *String {
	c := l.At(i)
	if c.kind != KindString {
		return NewString()
	}
	return c.s
}

func (l *List) AtList(i int) *List {
	c := l.At(i)
	if c.kind != KindList {
		return NewList()
	}
	return c.l
}

func (l *List) AtMap(i int) *Map {
	c := l.At(i)
	if c.kind != KindMap {
		return NewMap()
	}
	return c.m
}

func (l *List) AtSet(i int) *Set {
	c := l.At(i)
	if c.kind != KindSet {
		return NewSet()
	}
	return c.st
}

// Find returns the first index whose stored cell is numeric-coercion
// equal to v, or -1 if absent.
func (l *List) Find(v Cell) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i, c := range l.items {
		if CellEqual(c, v) {
			return i
		}
	}
	return -1
}

// Contains reports Find(v) >= 0.
func (l *List) Contains(v Cell) bool { return l.Find(v) >= 0 }
