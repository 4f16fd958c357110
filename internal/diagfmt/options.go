package diagfmt

import (
	"fmt"
	"strings"
)

// Format names an output encoding for a list of errors.
type Format uint8

const (
	// FormatPretty prints messages as they would appear in a terminal.
	FormatPretty Format = iota
	// FormatJSON prints a single JSON document.
	FormatJSON
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return FormatPretty, fmt.Errorf("unknown format %q (expected: pretty|json|msgpack)", s)
	}
}

// PrettyOpts configures pretty-printing of errors.
type PrettyOpts struct {
	Color bool
	Max   int // print at most Max errors; 0 means everything
}

// JSONOpts configures JSON and msgpack output.
type JSONOpts struct {
	IncludeSource bool // add {"name": ...} of the originating source
	Max           int  // truncate output, not the List; 0 means everything
}
