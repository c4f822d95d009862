package value

import (
	"strconv"
	"strings"

	"github.com/attohq/attoval/internal/utf8idx"
)

// normalizeCharIndex clamps a possibly-negative character index the way
// At/CharToByte-consuming operations expect: negative counts from the end.
func normalizeCharIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	return i
}

// At returns the single-character string at character index i; negative
// indices count from the end. Out-of-range returns an empty string.
func (s *String) At(i int) *String {
	b := s.bytes()
	length := utf8idx.CountCharacters(b)
	i = normalizeCharIndex(i, length)
	if i < 0 || i >= length {
		return NewString()
	}
	start := utf8idx.CharToByte(b, i)
	end := utf8idx.CharToByte(b, i+1)
	if start < 0 || end < 0 {
		return NewString()
	}
	return NewStringFromBytes(b[start:end])
}

// Substring returns the character-indexed half-open range [start, end).
// Negative indices count from the end; end >= length clamps to length;
// start >= end returns empty. SubstringFrom covers the "to the end" case.
func (s *String) Substring(start, end int) *String {
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
		return NewString()
	}
	bs := utf8idx.CharToByte(b, start)
	be := utf8idx.CharToByte(b, end)
	if bs < 0 || be < 0 {
		return NewString()
	}
	return NewStringFromBytes(b[bs:be])
}

// SubstringFrom is Substring(start, Length()): everything from start to the end.
func (s *String) SubstringFrom(start int) *String {
	return s.Substring(start, s.Length())
}

// Contains reports whether target occurs anywhere in s.
func (s *String) Contains(target *String) bool {
	return bytesIndex(s.bytes(), target.safeBytes()) >= 0
}

// StartsWith reports whether s begins with prefix.
func (s *String) StartsWith(prefix *String) bool {
	return strings.HasPrefix(string(s.bytes()), string(prefix.safeBytes()))
}

// EndsWith reports whether s ends with suffix.
func (s *String) EndsWith(suffix *String) bool {
	return strings.HasSuffix(string(s.bytes()), string(suffix.safeBytes()))
}

// Count returns the number of non-overlapping occurrences of target.
func (s *String) Count(target *String) int {
	t := target.safeBytes()
	if len(t) == 0 {
		return 0
	}
	return strings.Count(string(s.bytes()), string(t))
}

// GetPositionOf returns the character index of the first occurrence of
// target, or -1 if absent.
func (s *String) GetPositionOf(target *String) int {
	b := s.bytes()
	byteIdx := bytesIndex(b, target.safeBytes())
	if byteIdx < 0 {
		return -1
	}
	return utf8idx.ByteToChar(b, byteIdx)
}

func bytesIndex(haystack, needle []byte) int {
	return strings.Index(string(haystack), string(needle))
}

// IsNumber reports whether s parses as a number: an optional sign, at
// most one decimal point, and at least one digit.
func (s *String) IsNumber() bool {
	b := s.bytes()
	if len(b) == 0 {
		return false
	}
	i := 0
	if b[i] == '+' || b[i] == '-' {
		i++
	}
	digits := 0
	dots := 0
	for ; i < len(b); i++ {
		switch {
		case b[i] >= '0' && b[i] <= '9':
			digits++
		case b[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// ToBool is case-insensitive "true"/"t"/"1"/"yes"/"on" -> true, everything
// else (including empty) -> false.
func (s *String) ToBool() bool {
	t := strings.ToLower(strings.TrimSpace(string(s.bytes())))
	switch t {
	case "true", "t", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// ToInteger parses a leading integer (optional sign + digits); anything
// unparsable yields 0.
func (s *String) ToInteger() int32 {
	t := strings.TrimSpace(string(s.bytes()))
	end := leadingIntLen(t)
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(t[:end], 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

// ToFloat parses leading whitespace, an optional sign, an integer part,
// and an optional ".fraction"; anything unparsable yields 0.
func (s *String) ToFloat() float32 {
	t := strings.TrimSpace(string(s.bytes()))
	f, ok := parseLenientFloat(t)
	if !ok {
		return 0
	}
	return float32(f)
}

// parseLenientFloat (method form) backs CompareForSort's "string that
// parses leniently as a number" rule.
func (s *String) parseLenientFloat() (float64, bool) {
	return parseLenientFloat(strings.TrimSpace(string(s.bytes())))
}

func leadingIntLen(t string) int {
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	start := i
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// parseLenientFloat parses an optional sign, an integer part, and an
// optional ".fraction" from the start of t, ignoring any trailing
// garbage. Returns ok=false if there isn't at least one leading digit.
func parseLenientFloat(t string) (float64, bool) {
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	start := i
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	hasDigits := i > start
	if i < len(t) && t[i] == '.' {
		j := i + 1
		for j < len(t) && t[j] >= '0' && t[j] <= '9' {
			j++
		}
		if j > i+1 {
			hasDigits = true
		}
		i = j
	}
	if !hasDigits {
		return 0, false
	}
	f, err := strconv.ParseFloat(t[:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
