// Package diag builds the errors a parser reports about its input.
//
// # Purpose
//
//   - Turn a failure offset inside a source.Source into an *Error whose
//     message names the source, the line/column and a description, followed
//     by an excerpt of the surrounding lines with a caret under the column.
//   - Provide a bounded List so producers that keep going after the first
//     failure can collect, sort and deduplicate what they found.
//
// # Scope
//
// Package diag does not parse, tokenize or track positions while scanning.
// Offsets arrive from the caller and are resolved by source.GetLocation.
// Rendering into JSON, msgpack or coloured terminal output lives in
// internal/diagfmt; this package only produces the plain message.
//
// # Excerpt layout
//
// For an error on line 2, column 0 of "a\nb\nc":
//
//	1: a
//	2: b
//	   ^
//	3: c
//
// Line numbers are left-padded to the width of line+1 so the previous,
// current and next rows stay aligned when the next number gains a digit.
// The previous row is omitted on the first line, the next row on the last.
//
// Everything here is a pure function of its inputs and safe for concurrent use.
package diag
