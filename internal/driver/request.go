package driver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Request asks for one syntax error at Offset in File.
type Request struct {
	File        string `toml:"file"`
	Offset      int    `toml:"offset"`
	Description string `toml:"message"`
}

type requestFile struct {
	Errors []Request `toml:"error"`
}

// LoadRequests reads a TOML file of [[error]] tables. Relative file paths are
// resolved against the directory of the request file.
func LoadRequests(path string) ([]Request, error) {
	var rf requestFile
	meta, err := toml.DecodeFile(path, &rf)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	base := filepath.Dir(path)
	var errs []error
	for i := range rf.Errors {
		req := &rf.Errors[i]
		if strings.TrimSpace(req.File) == "" {
			errs = append(errs, fmt.Errorf("%s: error #%d: missing file", path, i+1))
			continue
		}
		if strings.TrimSpace(req.Description) == "" {
			errs = append(errs, fmt.Errorf("%s: error #%d: missing message", path, i+1))
		}
		if !filepath.IsAbs(req.File) {
			req.File = filepath.Join(base, req.File)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rf.Errors, nil
}
