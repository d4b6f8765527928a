package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps plain text to width, breaking on spaces. Cell widths
// are measured with runewidth so wide runes wrap correctly. Existing
// newlines are preserved.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	lineWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
			// First word on a line is always placed, hard-breaking if
			// it alone exceeds the width.
			for w > width {
				head, rest := splitAtWidth(word, width)
				b.WriteString(head)
				b.WriteByte('\n')
				word = rest
				w = runewidth.StringWidth(word)
			}
			b.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			b.WriteByte(' ')
			b.WriteString(word)
			lineWidth += 1 + w
		default:
			b.WriteByte('\n')
			b.WriteString(word)
			lineWidth = w
		}
	}
	return b.String()
}

func splitAtWidth(word string, width int) (string, string) {
	total := 0
	for i, r := range word {
		rw := runewidth.RuneWidth(r)
		if total+rw > width {
			return word[:i], word[i:]
		}
		total += rw
	}
	return word, ""
}
