package value

// Cell is a tagged union: a discriminated union of Null/Bool/Int/Float/
// String/List/Map/Set, plus the Invalid sentinel returned by out-of-bounds
// typed reads. It is the atomic unit of storage inside a List, and the
// only currency the JSON/CSV/Formatter components exchange with
// containers.
//
// Cell is a plain value type (not a pointer, not a handle): the Null/Bool/
// Int/Float payload is stored inline, while String/List/Map/Set payloads
// are handles to their own lock-guarded control blocks. Copying a Cell is
// always cheap; it never implicitly deep-copies a nested container, that
// happens explicitly at the container-insertion/retrieval boundary.
type Cell struct {
	kind Kind
	b    bool
	i    int32
	f    float32
	s    *String
	l    *List
	m    *Map
	st   *Set
}

// Null returns the Null cell.
func Null() Cell { return Cell{kind: KindNull} }

// Invalid returns the out-of-bounds sentinel cell.
func Invalid() Cell { return Cell{kind: KindInvalid} }

// BoolCell wraps a bool.
func BoolCell(b bool) Cell { return Cell{kind: KindBool, b: b} }

// IntCell wraps a signed 32-bit integer.
func IntCell(i int32) Cell { return Cell{kind: KindInt, i: i} }

// FloatCell wraps a 32-bit float.
func FloatCell(f float32) Cell { return Cell{kind: KindFloat, f: f} }

// StringCell wraps a *String handle. The caller is handing ownership of
// the handle to whoever stores the Cell; if the destination is a
// container, the container deep-copies it.
func StringCell(s *String) Cell {
	if s == nil {
		s = NewString()
	}
	return Cell{kind: KindString, s: s}
}

// ListCell wraps a *List handle.
func ListCell(l *List) Cell {
	if l == nil {
		l = NewList()
	}
	return Cell{kind: KindList, l: l}
}

// MapCell wraps a *Map handle.
func MapCell(m *Map) Cell {
	if m == nil {
		m = NewMap()
	}
	return Cell{kind: KindMap, m: m}
}

// SetCell wraps a *Set handle.
func SetCell(s *Set) Cell {
	if s == nil {
		s = NewSet()
	}
	return Cell{kind: KindSet, st: s}
}

// Kind reports the cell's tag ("typeOf").
func (c Cell) Kind() Kind { return c.kind }

// AsBool returns the bool payload, or false if the cell isn't a Bool.
func (c Cell) AsBool() bool {
	if c.kind != KindBool {
		return false
	}
	return c.b
}

// AsInt returns the int32 payload, or 0 if the cell isn't an Int.
func (c Cell) AsInt() int32 {
	if c.kind != KindInt {
		return 0
	}
	return c.i
}

// AsFloat returns the float32 payload, or 0 if the cell isn't a Float.
func (c Cell) AsFloat() float32 {
	if c.kind != KindFloat {
		return 0
	}
	return c.f
}

// AsString returns the *String handle, or nil if the cell isn't a String.
func (c Cell) AsString() *String {
	if c.kind != KindString {
		return nil
	}
	return c.s
}

// AsList returns the *List handle, or nil if the cell isn't a List.
func (c Cell) AsList() *List {
	if c.kind != KindList {
		return nil
	}
	return c.l
}

// AsMap returns the *Map handle, or nil if the cell isn't a Map.
func (c Cell) AsMap() *Map {
	if c.kind != KindMap {
		return nil
	}
	return c.m
}

// AsSet returns the *Set handle, or nil if the cell isn't a Set.
func (c Cell) AsSet() *Set {
	if c.kind != KindSet {
		return nil
	}
	return c.st
}

// cloneDeep returns a Cell safe to store inside a container: primitives are
// returned unchanged, container-kind payloads are replaced with a fresh
// deep copy of the handle. This is the one function that implements the
// "deep copy boundary" for Cells flowing into or out of a
// container.
func (c Cell) cloneDeep() Cell {
	switch c.kind {
	case KindString:
		return StringCell(c.s.Duplicate())
	case KindList:
		return ListCell(c.l.Duplicate())
	case KindMap:
		return MapCell(c.m.Duplicate())
	case KindSet:
		return SetCell(c.st.Duplicate())
	default:
		return c
	}
}
