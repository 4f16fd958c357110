package diag

import (
	"fmt"

	"synerr/internal/source"
)

// SyntaxErrorTitle opens every syntax error message.
const SyntaxErrorTitle = "Syntax Error"

// SyntaxError produces an Error describing a syntax error at position in src.
// The message has the form
//
//	Syntax Error <name> (<line>:<column>) <description>
//
// followed by a blank line and an excerpt of the source around the location.
func SyntaxError(src *source.Source, position int, description string) *Error {
	loc := source.GetLocation(src, position)
	return &Error{
		Message:     Header(src, loc, description) + "\n\n" + Excerpt(src, loc),
		Description: description,
		Source:      src,
		Positions:   []int{position},
		Locations:   []source.Location{loc},
	}
}

// Header formats the first line of a syntax error message.
func Header(src *source.Source, loc source.Location, description string) string {
	name := ""
	if src != nil {
		name = src.Name
	}
	return fmt.Sprintf("%s %s (%d:%d) %s", SyntaxErrorTitle, name, loc.Line, loc.Column, description)
}
