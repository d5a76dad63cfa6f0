package ui

import "github.com/mattn/go-runewidth"

// truncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}

	// Iterate by runes to find cut point
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// fit truncates s to width and pads it with spaces to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(truncateString(s, width), width)
}

// writeAt overwrites cells of line starting at col with s, clipping at the
// end of the line. line holds one rune per cell.
func writeAt(line []rune, col int, s string) {
	for _, r := range s {
		if col >= len(line) {
			return
		}
		if col >= 0 {
			line[col] = r
		}
		col++
	}
}
