package value

import "strconv"

// Format interpolates template tokens: s is the template, args is either a *List
// (consulted for `{n}` tokens) or a *Map (consulted for `{key}` tokens).
// A token whose body doesn't resolve is left in the output verbatim,
// including `{` and `}` that never form a complete token.
func (s *String) Format(args Cell) *String {
	text := s.safeBytes()
	out := make([]byte, 0, len(text))
	i := 0
	for i < len(text) {
		if text[i] != '{' {
			out = append(out, text[i])
			i++
			continue
		}
		end := indexByte(text[i+1:], '}')
		if end < 0 {
			// No closing brace anywhere ahead: the rest is literal.
			out = append(out, text[i:]...)
			break
		}
		end += i + 1
		token := string(text[i+1 : end])
		resolved, ok := resolveFormatToken(token, args)
		if ok {
			out = append(out, resolved...)
		} else {
			out = append(out, text[i:end+1]...)
		}
		i = end + 1
	}
	return NewStringFromBytes(out)
}

func resolveFormatToken(token string, args Cell) ([]byte, bool) {
	switch args.kind {
	case KindList:
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return nil, false
		}
		if n >= args.l.Length() {
			return nil, false
		}
		return NewStringFromCell(args.l.At(n)).Bytes(), true
	case KindMap:
		key := StringCell(NewStringFromBytes([]byte(token)))
		if !args.m.HasKey(key) {
			return nil, false
		}
		return NewStringFromCell(args.m.Get(key)).Bytes(), true
	default:
		return nil, false
	}
}

func indexByte(b []byte, target byte) int {
	for i, c := range b {
		if c == target {
			return i
		}
	}
	return -1
}
