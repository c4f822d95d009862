package value

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodeJSON renders c in canonical, whitespace-free form. It is the
// single encoder List.ToJSON/Map.ToJSON/Set.ToJSON all delegate to.
func EncodeJSON(c Cell) string {
	var buf strings.Builder
	encodeCellInto(&buf, c)
	return buf.String()
}

func encodeCellInto(buf *strings.Builder, c Cell) {
	switch c.kind {
	case KindNull, KindInvalid:
		buf.WriteString("null")
	case KindBool:
		if c.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(formatInt(c.i))
	case KindFloat:
		buf.WriteString(formatFloat(c.f))
	case KindString:
		encodeJSONString(buf, c.s.safeBytes())
	case KindList:
		encodeListInto(buf, c.l)
	case KindMap:
		encodeMapInto(buf, c.m)
	case KindSet:
		encodeListInto(buf, c.st.ToList())
	}
}

func encodeJSONString(buf *strings.Builder, b []byte) {
	buf.WriteByte('"')
	for _, ch := range b {
		switch ch {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if ch < 0x20 {
				buf.WriteString(`\u00`)
				const hexDigits = "0123456789abcdef"
				buf.WriteByte(hexDigits[ch>>4])
				buf.WriteByte(hexDigits[ch&0xF])
			} else {
				buf.WriteByte(ch)
			}
		}
	}
	buf.WriteByte('"')
}

func encodeListInto(buf *strings.Builder, l *List) {
	buf.WriteByte('[')
	for i, c := range l.snapshot() {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeCellInto(buf, c)
	}
	buf.WriteByte(']')
}

func encodeMapInto(buf *strings.Builder, m *Map) {
	keys := m.Keys().snapshot()
	values := m.Values().snapshot()
	buf.WriteByte('{')
	for i := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeJSONString(buf, NewStringFromCell(keys[i]).Bytes())
		buf.WriteByte(':')
		encodeCellInto(buf, values[i])
	}
	buf.WriteByte('}')
}

// ToJSON renders the canonical JSON array form.
func (l *List) ToJSON() string { return EncodeJSON(ListCell(l)) }

// ToJSON renders the canonical JSON object form; non-string keys are
// stringified via their value-to-string rule then quoted.
func (m *Map) ToJSON() string { return EncodeJSON(MapCell(m)) }

// ToJSON renders the set as a JSON array in its own value order.
func (s *Set) ToJSON() string { return EncodeJSON(SetCell(s)) }

// jsonParser is a lenient, hand-rolled recursive-descent JSON reader: it
// never panics or returns an error, it simply stops and hands back
// whatever was built so far when it hits something it can't parse.
type jsonParser struct {
	b []byte
	i int
}

// ParseJSON parses text leniently and returns the resulting Cell.
func ParseJSON(text *String) Cell {
	p := &jsonParser{b: text.Bytes()}
	p.skipWS()
	if p.i >= len(p.b) {
		return Null()
	}
	return p.parseValue()
}

// FromJSON parses a JSON array into a List; any other JSON shape (or
// unparsable text) yields an empty List.
func FromJSON(text *String) *List {
	c := ParseJSON(text)
	if c.kind == KindList {
		return c.l
	}
	return NewList()
}

// MapFromJSON parses a JSON object into a Map; any other shape yields an
// empty Map.
func MapFromJSON(text *String) *Map {
	c := ParseJSON(text)
	if c.kind == KindMap {
		return c.m
	}
	return NewMap()
}

// SetFromJSON parses a JSON array and deduplicates its elements via Put.
func SetFromJSON(text *String) *Set {
	c := ParseJSON(text)
	out := NewSet()
	if c.kind != KindList {
		return out
	}
	for _, e := range c.l.snapshot() {
		out.Put(e)
	}
	return out
}

func (p *jsonParser) skipWS() {
	for p.i < len(p.b) {
		switch p.b[p.i] {
		case ' ', '\t', '\r', '\n':
			p.i++
		default:
			return
		}
	}
}

func (p *jsonParser) consumeLiteral(lit string) bool {
	if p.i+len(lit) <= len(p.b) && string(p.b[p.i:p.i+len(lit)]) == lit {
		p.i += len(lit)
		return true
	}
	return false
}

func (p *jsonParser) parseValue() Cell {
	p.skipWS()
	if p.i >= len(p.b) {
		return IntCell(0)
	}
	ch := p.b[p.i]
	switch {
	case ch == '"':
		return StringCell(p.parseString())
	case ch == '{':
		return MapCell(p.parseObject())
	case ch == '[':
		return ListCell(p.parseArray())
	case ch == 't':
		if p.consumeLiteral("true") {
			return BoolCell(true)
		}
	case ch == 'f':
		if p.consumeLiteral("false") {
			return BoolCell(false)
		}
	case ch == 'n':
		if p.consumeLiteral("null") {
			return Null()
		}
	case ch == '-' || ch == '+' || (ch >= '0' && ch <= '9'):
		return p.parseNumber()
	}
	// Unrecognized token: skip it up to the next delimiter and yield Int 0.
	p.i++
	for p.i < len(p.b) {
		switch p.b[p.i] {
		case ',', ']', '}', ':', ' ', '\t', '\r', '\n':
			return IntCell(0)
		}
		p.i++
	}
	return IntCell(0)
}

func (p *jsonParser) parseNumber() Cell {
	start := p.i
	hasDot, hasExp := false, false
	for p.i < len(p.b) {
		c := p.b[p.i]
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-':
		case c == '.':
			hasDot = true
		case c == 'e' || c == 'E':
			hasExp = true
		default:
			goto doneScan
		}
		p.i++
	}
doneScan:
	text := string(p.b[start:p.i])
	if text == "" {
		return IntCell(0)
	}
	if hasDot || hasExp {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return IntCell(0)
		}
		return FloatCell(float32(f))
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if f, ferr := strconv.ParseFloat(text, 64); ferr == nil {
			return IntCell(int32(f))
		}
		return IntCell(0)
	}
	return IntCell(int32(n))
}

func (p *jsonParser) parseString() *String {
	if p.i >= len(p.b) || p.b[p.i] != '"' {
		return NewString()
	}
	p.i++
	var out []byte
	for p.i < len(p.b) {
		c := p.b[p.i]
		if c == '"' {
			p.i++
			return NewStringFromBytes(out)
		}
		if c == '\\' {
			p.i++
			if p.i >= len(p.b) {
				break
			}
			esc := p.b[p.i]
			switch esc {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case '/':
				out = append(out, '/')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'u':
				if p.i+4 < len(p.b) {
					hex := string(p.b[p.i+1 : p.i+5])
					if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
						var rb [4]byte
						n := utf8.EncodeRune(rb[:], rune(v))
						out = append(out, rb[:n]...)
						p.i += 4
					}
				}
			default:
				out = append(out, esc)
			}
			p.i++
			continue
		}
		out = append(out, c)
		p.i++
	}
	return NewStringFromBytes(out)
}

func (p *jsonParser) parseArray() *List {
	out := NewList()
	if p.i >= len(p.b) || p.b[p.i] != '[' {
		return out
	}
	p.i++
	p.skipWS()
	if p.i < len(p.b) && p.b[p.i] == ']' {
		p.i++
		return out
	}
	for {
		p.skipWS()
		if p.i >= len(p.b) {
			return out
		}
		if p.b[p.i] == ']' {
			p.i++
			return out
		}
		out.AppendCell(p.parseValue())
		p.skipWS()
		if p.i >= len(p.b) {
			return out
		}
		switch p.b[p.i] {
		case ',':
			p.i++
		case ']':
			p.i++
			return out
		default:
			return out
		}
	}
}

func (p *jsonParser) parseObject() *Map {
	out := NewMap()
	if p.i >= len(p.b) || p.b[p.i] != '{' {
		return out
	}
	p.i++
	p.skipWS()
	if p.i < len(p.b) && p.b[p.i] == '}' {
		p.i++
		return out
	}
	for {
		p.skipWS()
		if p.i >= len(p.b) {
			return out
		}
		if p.b[p.i] == '}' {
			p.i++
			return out
		}
		if p.b[p.i] != '"' {
			return out
		}
		key := p.parseString()
		p.skipWS()
		if p.i >= len(p.b) || p.b[p.i] != ':' {
			return out
		}
		p.i++
		val := p.parseValue()
		out.PutString(key, val)
		p.skipWS()
		if p.i >= len(p.b) {
			return out
		}
		switch p.b[p.i] {
		case ',':
			p.i++
		case '}':
			p.i++
			return out
		default:
			return out
		}
	}
}
