package diagfmt

import (
	"io"

	"synerr/internal/diag"
)

// Write dispatches to the renderer selected by format.
func Write(w io.Writer, list *diag.List, format Format, pretty PrettyOpts, jsonOpts JSONOpts) error {
	switch format {
	case FormatJSON:
		return JSON(w, list, jsonOpts)
	case FormatMsgpack:
		return Msgpack(w, list, jsonOpts)
	default:
		return Pretty(w, list, pretty)
	}
}
