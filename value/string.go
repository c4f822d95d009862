// Package value is the tagged-value container runtime: Cell, String,
// List, Map, Set, and Buffer, plus the JSON/CSV/Formatter components that
// compose them. All five container types and their codecs live in one
// package, split across files by concern rather than by type, since
// List/Map/Set reference each other through Cell and need to compile
// together.
package value

import (
	"strings"
	"sync"

	"github.com/attohq/attoval/internal/hashutil"
	"github.com/attohq/attoval/internal/utf8idx"
)

// String is an owned, UTF-8 byte sequence with character-level indexing.
// Every "mutation" is functional: it returns a new *String and leaves the
// receiver untouched. The mutex exists for contract uniformity with the
// other container types and to guard construction visibility across
// goroutines; nothing ever takes it exclusively after construction, since
// there is no in-place mutation to guard against.
type String struct {
	mu   sync.RWMutex
	data []byte
}

// NewString returns an empty string.
func NewString() *String {
	return &String{}
}

// NewStringFromBytes copies length bytes from b.
func NewStringFromBytes(b []byte) *String {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &String{data: cp}
}

// NewStringFromCString copies bytes up to (not including) the first NUL
// byte, mirroring the C-style "nulled terminator" constructor source.
func NewStringFromCString(b []byte) *String {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return NewStringFromBytes(b[:n])
}

// NewStringFromBool renders "true"/"false".
func NewStringFromBool(b bool) *String {
	if b {
		return NewStringFromBytes([]byte("true"))
	}
	return NewStringFromBytes([]byte("false"))
}

// NewStringFromInt renders a decimal integer.
func NewStringFromInt(i int32) *String {
	return NewStringFromBytes([]byte(formatInt(i)))
}

// NewStringFromFloat renders six fractional digits, trailing zeros
// stripped but one digit kept.
func NewStringFromFloat(f float32) *String {
	return NewStringFromBytes([]byte(formatFloat(f)))
}

// NewStringFromList renders the canonical JSON text of l.
func NewStringFromList(l *List) *String {
	return NewStringFromBytes([]byte(l.ToJSON()))
}

// NewStringFromMap renders the canonical JSON text of m.
func NewStringFromMap(m *Map) *String {
	return NewStringFromBytes([]byte(m.ToJSON()))
}

// NewStringFromSet renders the canonical JSON text of s.
func NewStringFromSet(s *Set) *String {
	return NewStringFromBytes([]byte(s.ToJSON()))
}

// NewStringFromCell renders whichever of the above constructors matches
// the cell's kind; Null/Invalid render as empty strings.
func NewStringFromCell(c Cell) *String {
	switch c.kind {
	case KindBool:
		return NewStringFromBool(c.b)
	case KindInt:
		return NewStringFromInt(c.i)
	case KindFloat:
		return NewStringFromFloat(c.f)
	case KindString:
		return c.s.Duplicate()
	case KindList:
		return NewStringFromList(c.l)
	case KindMap:
		return NewStringFromMap(c.m)
	case KindSet:
		return NewStringFromSet(c.st)
	default:
		return NewString()
	}
}

// bytes returns a snapshot copy of the string's bytes under a read lock.
func (s *String) bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]byte, len(s.data))
	copy(cp, s.data)
	return cp
}

// Bytes returns a copy of the raw UTF-8 bytes.
func (s *String) Bytes() []byte { return s.bytes() }

// Duplicate returns a deep copy: a fresh handle over the same bytes.
func (s *String) Duplicate() *String {
	return NewStringFromBytes(s.bytes())
}

// Length returns the number of UTF-8 code points.
func (s *String) Length() int {
	return utf8idx.CountCharacters(s.bytes())
}

// ByteLength returns the number of bytes.
func (s *String) ByteLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// IsEmpty reports whether the string has zero bytes.
func (s *String) IsEmpty() bool { return s.ByteLength() == 0 }

// Equals reports byte-for-byte equality. A nil receiver/argument is
// treated as empty.
func (s *String) Equals(o *String) bool {
	a := s.safeBytes()
	b := o.safeBytes()
	return string(a) == string(b)
}

func (s *String) safeBytes() []byte {
	if s == nil {
		return nil
	}
	return s.bytes()
}

// Compare is a byte-wise comparison; the shorter of two strings that
// share a common prefix sorts first. Empty equals empty.
func (s *String) Compare(o *String) int {
	a, b := s.safeBytes(), o.safeBytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Hash is djb2 over the raw bytes; an empty string hashes to 0.
func (s *String) Hash() uint32 {
	return hashutil.DJB2(s.safeBytes())
}

// DisplayWidth is the sum of each code point's terminal column width
// used by console-style consumers for alignment.
func (s *String) DisplayWidth() int {
	return utf8idx.DisplayWidth(s.safeBytes())
}

// String implements fmt.Stringer for debugging convenience; callers that
// need the canonical text rendering should use Bytes()/ToJSON() instead.
func (s *String) String() string {
	return string(s.safeBytes())
}

// isTrimByte reports whether b is trimmed by Trim: any code unit <= space.
func isTrimByte(b byte) bool { return b <= ' ' }

// trimmedRange returns the [start,end) byte range of s with leading and
// trailing "code units <= space" removed.
func trimmedRange(b []byte) (int, int) {
	start, end := 0, len(b)
	for start < end && isTrimByte(b[start]) {
		start++
	}
	for end > start && isTrimByte(b[end-1]) {
		end--
	}
	return start, end
}

// asciiWhitespace reports whether b is one of the ASCII whitespace bytes
// used by String.Split() (the no-separator overload).
func asciiWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// newStringBuilder returns a strings.Builder pre-grown to capHint bytes;
// String.Join in string_split.go builds its output with it.
func newStringBuilder(capHint int) *strings.Builder {
	b := &strings.Builder{}
	b.Grow(capHint)
	return b
}
