package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// IsLineTerminator reports whether r ends a line on its own.
// "\r\n" is handled by callers as a single terminator.
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// SplitLines splits body on "\r\n", "\n", "\r", U+2028 and U+2029.
// Terminators may be mixed within one body. A trailing terminator yields a
// trailing empty line, so the result always has at least one element.
func SplitLines(body string) []string {
	lines := make([]string, 0, strings.Count(body, "\n")+1)
	start := 0
	for i := 0; i < len(body); {
		r, size := decodeRune(body, i)
		if !IsLineTerminator(r) {
			i += size
			continue
		}
		lines = append(lines, body[start:i])
		if r == '\r' && i+1 < len(body) && body[i+1] == '\n' {
			size = 2
		}
		i += size
		start = i
	}
	return append(lines, body[start:])
}

// LineIndex holds the rune offset at which every line of a body starts.
// The first entry is always 0.
type LineIndex []uint32

// BuildLineIndex scans body once and records line starts using the same
// terminator rules as SplitLines.
func BuildLineIndex(body string) LineIndex {
	idx := LineIndex{0}
	var runeOff uint32
	for i := 0; i < len(body); {
		r, size := decodeRune(body, i)
		i += size
		runeOff++
		if !IsLineTerminator(r) {
			continue
		}
		if r == '\r' && i < len(body) && body[i] == '\n' {
			i++
			runeOff++
		}
		idx = append(idx, runeOff)
	}
	return idx
}

// Lines returns the number of lines the index describes.
func (idx LineIndex) Lines() int {
	return len(idx)
}

// locate finds the line containing off with a binary search over line starts.
func (idx LineIndex) locate(off uint32) Location {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if idx[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Location{Line: lo + 1, Column: int(off - idx[lo])}
}

func toOffset(n int) uint32 {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return off
}
