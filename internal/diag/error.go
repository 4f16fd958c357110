package diag

import (
	"synerr/internal/source"
)

// Error describes a problem found at one or more offsets of a Source.
type Error struct {
	Message     string
	Description string // message without the location header and excerpt
	Source      *source.Source
	Positions   []int             // rune offsets into Source.Body
	Locations   []source.Location // Positions resolved against Source
}

// New creates an Error and resolves positions when a source is given.
func New(message string, src *source.Source, positions []int) *Error {
	e := &Error{
		Message:     message,
		Description: message,
		Source:      src,
		Positions:   positions,
	}
	if src != nil && len(positions) > 0 {
		e.Locations = make([]source.Location, 0, len(positions))
		for _, pos := range positions {
			e.Locations = append(e.Locations, source.GetLocation(src, pos))
		}
	}
	return e
}

func (e *Error) Error() string {
	return e.Message
}

// Location returns the first resolved location, if any.
func (e *Error) Location() (source.Location, bool) {
	if e == nil || len(e.Locations) == 0 {
		return source.Location{}, false
	}
	return e.Locations[0], true
}
