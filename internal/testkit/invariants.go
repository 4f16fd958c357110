package testkit

import (
	"fmt"
	"strconv"
	"strings"

	"synerr/internal/diag"
	"synerr/internal/source"
)

// CheckSyntaxErrorInvariants verifies the layout of a syntax error message:
//  1. the message starts with the header for its first location
//  2. the excerpt rows carry consecutive line numbers around that line,
//     padded to a common width, with text matching the source lines
//  3. the caret row sits right after the current line and holds exactly
//     padLen+2+column spaces before the caret
func CheckSyntaxErrorInvariants(e *diag.Error) error {
	if e == nil || e.Source == nil {
		return fmt.Errorf("nil error or source")
	}
	loc, ok := e.Location()
	if !ok {
		return fmt.Errorf("error has no location")
	}

	header := diag.Header(e.Source, loc, e.Description)
	if !strings.HasPrefix(e.Message, header+"\n\n") {
		return fmt.Errorf("message does not start with header %q", header)
	}
	excerpt := strings.TrimSuffix(strings.TrimPrefix(e.Message, header+"\n\n"), "\n")
	rows := strings.Split(excerpt, "\n")
	lines := source.SplitLines(e.Source.Body)
	padLen := len(strconv.Itoa(loc.Line + 1))

	want := loc.Line - 1
	if loc.Line < 2 {
		want = loc.Line
	}
	sawCaret := false
	for i, row := range rows {
		if strings.HasSuffix(row, "^") && strings.TrimSpace(row) == "^" {
			if sawCaret || i == 0 {
				return fmt.Errorf("row %d: unexpected caret row", i)
			}
			if prev := rows[i-1]; !strings.HasPrefix(strings.TrimLeft(prev, " "), strconv.Itoa(loc.Line)+": ") {
				return fmt.Errorf("caret row does not follow line %d", loc.Line)
			}
			if indent := len(row) - 1; indent != padLen+2+loc.Column {
				return fmt.Errorf("caret indented by %d, want %d", indent, padLen+2+loc.Column)
			}
			sawCaret = true
			continue
		}
		if len(row) < padLen+2 || row[padLen:padLen+2] != ": " {
			return fmt.Errorf("row %d: line number not padded to %d: %q", i, padLen, row)
		}
		num, err := strconv.Atoi(strings.TrimSpace(row[:padLen]))
		if err != nil {
			return fmt.Errorf("row %d: bad line number: %w", i, err)
		}
		if num != want {
			return fmt.Errorf("row %d: line number %d, want %d", i, num, want)
		}
		if num >= 1 && num <= len(lines) && row[padLen+2:] != lines[num-1] {
			return fmt.Errorf("row %d: text %q does not match source line %q", i, row[padLen+2:], lines[num-1])
		}
		want++
	}
	if !sawCaret {
		return fmt.Errorf("no caret row")
	}
	if last := want - 1; last > loc.Line+1 || (last == loc.Line+1 && loc.Line >= len(lines)) {
		return fmt.Errorf("unexpected next line %d", last)
	}
	return nil
}
