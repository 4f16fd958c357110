package source

import (
	"unicode/utf8"
)

// GetLocation converts a rune offset into a Location within src.
// Offsets outside the body are clamped to its bounds. An offset that points
// at a line terminator belongs to the line the terminator ends.
func GetLocation(src *Source, offset int) Location {
	if src == nil {
		return Location{Line: 1}
	}
	idx := src.Index()
	offset = max(offset, 0)
	offset = min(offset, utf8.RuneCountInString(src.Body))
	return idx.locate(toOffset(offset))
}

func decodeRune(s string, i int) (rune, int) {
	if c := s[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s[i:])
}
