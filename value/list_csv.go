package value

import "strings"

// ToCSV interprets the receiver as a list of row-Lists and renders an
// RFC-4180-ish CSV document: rows joined by "\r\n", cells by ",". A cell
// is quoted if it contains a comma, quote, or line break; a literal quote
// inside a quoted cell becomes "". Non-string cells are stringified by
// their natural Cell-to-String rule; nested containers are stringified
// via their canonical JSON form and then quoted like any other cell that
// needs it.
func (l *List) ToCSV() *String {
	rows := l.snapshot()
	var out strings.Builder
	for ri, rowCell := range rows {
		if ri > 0 {
			out.WriteString("\r\n")
		}
		row := rowCell.AsList()
		if row == nil {
			continue
		}
		cells := row.snapshot()
		for ci, c := range cells {
			if ci > 0 {
				out.WriteByte(',')
			}
			out.WriteString(csvField(c))
		}
	}
	return NewStringFromBytes([]byte(out.String()))
}

func csvField(c Cell) string {
	text := string(NewStringFromCell(c).Bytes())
	if csvNeedsQuoting(text) {
		return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
	}
	return text
}

func csvNeedsQuoting(s string) bool {
	return strings.ContainsAny(s, ",\"\n\r")
}

// FromCSV parses text as CSV: lines split on "\n"/"\r\n", empty lines
// skipped, each line parsed with standard quoting rules (a `"` outside
// quotes opens a quoted section in which `""` is a literal quote; outside
// quotes a comma ends the field). Produces a List of Lists of Strings.
func FromCSV(text *String) *List {
	raw := string(text.Bytes())
	out := NewList()
	for _, line := range splitCSVLines(raw) {
		if line == "" {
			continue
		}
		out.AppendList(parseCSVLine(line))
	}
	return out
}

func splitCSVLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			end := i
			if end > start && s[end-1] == '\r' {
				end--
			}
			lines = append(lines, s[start:end])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func parseCSVLine(line string) *List {
	out := NewList()
	var field strings.Builder
	inQuotes := false
	i := 0
	for i < len(line) {
		ch := line[i]
		switch {
		case inQuotes:
			if ch == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(ch)
			i++
		default:
			switch ch {
			case '"':
				inQuotes = true
				i++
			case ',':
				out.AppendString(NewStringFromBytes([]byte(field.String())))
				field.Reset()
				i++
			default:
				field.WriteByte(ch)
				i++
			}
		}
	}
	out.AppendString(NewStringFromBytes([]byte(field.String())))
	return out
}
