package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads a file from disk and names the Source after its path.
// A leading BOM is dropped; line terminators are kept as-is so offsets
// computed by a parser over the raw text stay valid.
func Load(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(string(removeBOM(content)), filepath.ToSlash(filepath.Clean(path))), nil
}

// Read consumes r entirely and wraps the result as a Source called name.
func Read(r io.Reader, name string) (*Source, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewSource(string(removeBOM(content)), name), nil
}

func removeBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, utf8BOM)
}
