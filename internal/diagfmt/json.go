package diagfmt

import (
	"encoding/json"
	"io"

	"synerr/internal/diag"
)

// LocationJSON is a resolved line/column pair.
type LocationJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceJSON identifies the originating source.
type SourceJSON struct {
	Name string `json:"name"`
}

// ErrorJSON is the serialised form of a diag.Error.
type ErrorJSON struct {
	Message     string         `json:"message"`
	Description string         `json:"description,omitempty"`
	Source      *SourceJSON    `json:"source,omitempty"`
	Positions   []int          `json:"positions,omitempty"`
	Locations   []LocationJSON `json:"locations,omitempty"`
}

// Output is the root document written by JSON and Msgpack.
type Output struct {
	Errors []ErrorJSON `json:"errors"`
	Count  int         `json:"count"`
	Total  int         `json:"total"`
}

// BuildOutput converts list into an Output without serialising it.
func BuildOutput(list *diag.List, opts JSONOpts) Output {
	items := list.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	out := Output{
		Errors: make([]ErrorJSON, 0, n),
		Total:  len(items),
	}
	for _, e := range items[:n] {
		ej := ErrorJSON{
			Message:     e.Message,
			Description: e.Description,
			Positions:   e.Positions,
		}
		if opts.IncludeSource && e.Source != nil {
			ej.Source = &SourceJSON{Name: e.Source.Name}
		}
		for _, loc := range e.Locations {
			ej.Locations = append(ej.Locations, LocationJSON{Line: loc.Line, Column: loc.Column})
		}
		out.Errors = append(out.Errors, ej)
	}
	out.Count = len(out.Errors)
	return out
}

// JSON writes list as an indented JSON document.
func JSON(w io.Writer, list *diag.List, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildOutput(list, opts))
}
