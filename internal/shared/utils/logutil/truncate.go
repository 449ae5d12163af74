package logutil

import "unicode/utf8"

// Truncate shortens s to at most maxRunes runes for logging, marking the cut
// with "...". Multi-byte characters are never split.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + "..."
}
