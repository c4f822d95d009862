package utf8idx

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// emoji plane-1 ranges that x/text/width classifies as narrow/neutral but
// that terminal renderers consistently draw at double width, predating
// Unicode's own East Asian Width assignment for emoji in most text-layout
// libraries.
var wideEmojiRanges = [][2]rune{
	{0x1F300, 0x1FAFF}, // misc symbols & pictographs through symbols & pictographs extended-A
	{0x1F000, 0x1F0FF}, // mahjong/domino/playing cards
}

func isWideEmoji(r rune) bool {
	for _, rg := range wideEmojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// RuneWidth returns the display width (1 or 2) of a single rune: ASCII and
// most BMP characters are 1; CJK ideographs and other East-Asian
// "wide"/"fullwidth" characters, plus plane-1 emoji, are 2.
func RuneWidth(r rune) int {
	if isWideEmoji(r) {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// DisplayWidth sums RuneWidth over every code point in a UTF-8 byte slice.
// Malformed sequences fall back to one byte = one column, matching the
// "malformed leading bytes count as one byte" leniency used elsewhere in
// this package.
func DisplayWidth(b []byte) int {
	total := 0
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			total++
			i++
			continue
		}
		total += RuneWidth(r)
		i += size
	}
	return total
}
