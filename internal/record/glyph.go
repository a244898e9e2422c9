package record

import "strings"

// ReplaceControlChars substitutes control and zero-width characters in
// content with visible placeholder glyphs (§4.2 SectionLineView). Each
// such rune becomes one glyph, except tab, which becomes the fixed
// four-cell "→   "; all other runes pass through unchanged.
func ReplaceControlChars(content string) string {
	var b strings.Builder
	for _, r := range content {
		b.WriteString(replaceRune(r))
	}
	return b.String()
}

func replaceRune(r rune) string {
	switch r {
	case '\t':
		return "→   "
	case '\n':
		return "⏎"
	case '\r':
		return "␍"
	case 0x7F:
		return "␡"
	}
	if r < 0x20 {
		// U+2400-U+241F "Control Pictures" block mirrors ASCII control
		// codes 0x00-0x1F one-for-one.
		return string(rune(0x2400 + r))
	}
	if isZeroWidth(r) {
		return "�"
	}
	return string(r)
}

func isZeroWidth(r rune) bool {
	switch r {
	case 0x200B, 0x200C, 0x200D, 0xFEFF, 0x2060:
		return true
	}
	return false
}
