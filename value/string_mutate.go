package value

import (
	"bytes"
	"strings"

	"github.com/attohq/attoval/internal/utf8idx"
)

// Append returns a new String with other's bytes appended.
func (s *String) Append(other *String) *String {
	a, b := s.bytes(), other.safeBytes()
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return NewStringFromBytes(out)
}

// Plus is the '+' operator alias for Append.
func (s *String) Plus(other *String) *String { return s.Append(other) }

// Prepend returns a new String with other's bytes placed before s's.
func (s *String) Prepend(other *String) *String {
	return other.Append(s)
}

// Insert returns a new String with other inserted at character index
// index; negative indices count from the end, and anything still out of
// range clamps into [0, length].
func (s *String) Insert(index int, other *String) *String {
	b := s.bytes()
	length := utf8idx.CountCharacters(b)
	index = normalizeCharIndex(index, length)
	if index < 0 {
		index = 0
	}
	if index > length {
		index = length
	}
	byteIdx := utf8idx.CharToByte(b, index)
	out := make([]byte, 0, len(b)+len(other.safeBytes()))
	out = append(out, b[:byteIdx]...)
	out = append(out, other.safeBytes()...)
	out = append(out, b[byteIdx:]...)
	return NewStringFromBytes(out)
}

// Remove returns a new String with the character range [start, end)
// removed; indices follow the same clamping rules as Substring.
func (s *String) Remove(start, end int) *String {
	b := s.bytes()
	length := utf8idx.CountCharacters(b)
	start = normalizeCharIndex(start, length)
	if end < 0 {
		end = normalizeCharIndex(end, length)
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end || start >= length {
		return NewStringFromBytes(b)
	}
	bs := utf8idx.CharToByte(b, start)
	be := utf8idx.CharToByte(b, end)
	out := make([]byte, 0, len(b)-(be-bs))
	out = append(out, b[:bs]...)
	out = append(out, b[be:]...)
	return NewStringFromBytes(out)
}

// Replace returns a new String with every non-overlapping occurrence of
// target replaced by replacement, scanning left-to-right.
func (s *String) Replace(target, replacement *String) *String {
	t := target.safeBytes()
	if len(t) == 0 {
		return NewStringFromBytes(s.bytes())
	}
	out := bytes.ReplaceAll(s.bytes(), t, replacement.safeBytes())
	return NewStringFromBytes(out)
}

// Trim strips leading and trailing code units <= space.
func (s *String) Trim() *String {
	b := s.bytes()
	start, end := trimmedRange(b)
	return NewStringFromBytes(b[start:end])
}

// Upper returns an ASCII/Unicode-uppercased copy.
func (s *String) Upper() *String {
	return NewStringFromBytes([]byte(strings.ToUpper(string(s.bytes()))))
}

// Lower returns an ASCII/Unicode-lowercased copy.
func (s *String) Lower() *String {
	return NewStringFromBytes([]byte(strings.ToLower(string(s.bytes()))))
}

// Reverse returns a code-point-aware reversal (multi-byte characters stay
// intact, just reordered).
func (s *String) Reverse() *String {
	b := s.bytes()
	length := utf8idx.CountCharacters(b)
	out := make([]byte, 0, len(b))
	for i := length - 1; i >= 0; i-- {
		start := utf8idx.CharToByte(b, i)
		end := utf8idx.CharToByte(b, i+1)
		out = append(out, b[start:end]...)
	}
	return NewStringFromBytes(out)
}

// Repeat returns s concatenated with itself n times; n==0 returns empty,
// n<0 returns a copy of the receiver unchanged.
func (s *String) Repeat(n int) *String {
	if n < 0 {
		return NewStringFromBytes(s.bytes())
	}
	if n == 0 {
		return NewString()
	}
	b := s.bytes()
	out := make([]byte, 0, len(b)*n)
	for i := 0; i < n; i++ {
		out = append(out, b...)
	}
	return NewStringFromBytes(out)
}
