package diag

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"synerr/internal/source"
)

// ExcerptStyle decorates parts of an excerpt. Nil funcs leave text unchanged,
// so the zero value renders plain text with the caret indented by column.
type ExcerptStyle struct {
	Gutter func(string) string // line number
	Text   func(string) string // source line
	Caret  func(string) string

	// DisplayWidth indents the caret by the terminal cells the runes before
	// the column occupy instead of by the column itself.
	DisplayWidth bool
}

// widthCond pins ambiguous-width runes to one cell regardless of locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// Excerpt renders the lines around loc with a caret under loc.Column.
func Excerpt(src *source.Source, loc source.Location) string {
	return ExcerptStyled(src, loc, ExcerptStyle{})
}

// ExcerptStyled is Excerpt with decorations applied to each part.
func ExcerptStyled(src *source.Source, loc source.Location, style ExcerptStyle) string {
	body := ""
	if src != nil {
		body = src.Body
	}
	lines := source.SplitLines(body)
	line := max(loc.Line, 1)
	padLen := len(strconv.Itoa(line + 1))

	var b strings.Builder
	if line >= 2 {
		writeRow(&b, style, padLen, line-1, lineAt(lines, line-2))
	}
	current := lineAt(lines, line-1)
	writeRow(&b, style, padLen, line, current)
	b.WriteString(strings.Repeat(" ", padLen+2+caretOffset(current, loc.Column, style.DisplayWidth)))
	b.WriteString(paint(style.Caret, "^"))
	b.WriteByte('\n')
	if line < len(lines) {
		writeRow(&b, style, padLen, line+1, lines[line])
	}
	return b.String()
}

func writeRow(b *strings.Builder, style ExcerptStyle, padLen, num int, text string) {
	b.WriteString(paint(style.Gutter, lpad(padLen, strconv.Itoa(num))))
	b.WriteString(": ")
	b.WriteString(paint(style.Text, text))
	b.WriteByte('\n')
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func lpad(width int, s string) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// caretOffset returns column, or with cells set the number of terminal cells
// the first column runes of text occupy. Control characters such as tabs
// count as one cell, wide runes as two and combining marks as none. Columns
// past the end count one cell each.
func caretOffset(text string, column int, cells bool) int {
	if !cells {
		return column
	}
	width, n := 0, 0
	for _, r := range text {
		if n >= column {
			return width
		}
		n++
		if unicode.IsControl(r) {
			width++
			continue
		}
		width += widthCond.RuneWidth(r)
	}
	return width + max(column-n, 0)
}

func paint(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}
