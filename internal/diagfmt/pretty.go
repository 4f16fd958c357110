package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"synerr/internal/diag"
)

type palette struct {
	title  *color.Color
	name   *color.Color
	gutter *color.Color
	caret  *color.Color
}

func newPalette() *palette {
	p := &palette{
		title:  color.New(color.FgRed, color.Bold),
		name:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	// Colour was requested explicitly, so ignore color.NoColor.
	for _, c := range []*color.Color{p.title, p.name, p.gutter, p.caret} {
		c.EnableColor()
	}
	return p
}

// Pretty writes the errors in list, separated by blank lines.
// Syntax errors are re-rendered from their structured fields so the caret
// lines up on a terminal even after wide runes, and with colour the header,
// gutter and caret are painted. For single-width text the output equals
// Message. Any other error is written as its Message.
func Pretty(w io.Writer, list *diag.List, opts PrettyOpts) error {
	var pal *palette
	if opts.Color {
		pal = newPalette()
	}
	items := list.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i, e := range items {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		msg := render(e, pal)
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		if _, err := io.WriteString(w, msg); err != nil {
			return fmt.Errorf("failed to write error: %w", err)
		}
	}
	return nil
}

// render rebuilds a syntax error message. A nil palette renders plain text.
func render(e *diag.Error, p *palette) string {
	loc, ok := e.Location()
	if !ok || e.Source == nil || !strings.HasPrefix(e.Message, diag.SyntaxErrorTitle+" ") {
		return e.Message
	}
	style := diag.ExcerptStyle{DisplayWidth: true}
	header := diag.Header(e.Source, loc, e.Description)
	if p != nil {
		header = fmt.Sprintf("%s %s (%d:%d) %s",
			p.title.Sprint(diag.SyntaxErrorTitle), p.name.Sprint(e.Source.Name),
			loc.Line, loc.Column, e.Description)
		style.Gutter = sprint(p.gutter)
		style.Caret = sprint(p.caret)
	}
	return header + "\n\n" + diag.ExcerptStyled(e.Source, loc, style)
}

func sprint(c *color.Color) func(string) string {
	return func(s string) string { return c.Sprint(s) }
}
