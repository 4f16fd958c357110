package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"synerr/internal/diag"
)

// Msgpack writes the same document as JSON in msgpack encoding.
// Field names follow the json tags so both encodings share one schema.
func Msgpack(w io.Writer, list *diag.List, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildOutput(list, opts))
}

// DecodeMsgpack reads a document produced by Msgpack.
func DecodeMsgpack(r io.Reader) (Output, error) {
	var out Output
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	err := dec.Decode(&out)
	return out, err
}
