package value

import "strconv"

// formatFloat renders a float32 as decimal with six fractional digits,
// trailing zeros stripped but at least one digit kept, so 3.0 stays
// "3.0", never "3". Used by both the String-from-Float constructor and
// the canonical JSON Float encoding, kept in one place so the two can
// never drift.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', 6, 32)
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return s + ".0"
	}
	end := len(s)
	for end > dot+2 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// formatInt renders an int32 as plain decimal.
func formatInt(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}
