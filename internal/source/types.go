package source

import "sync"

// DefaultName labels a Source created without an explicit name.
const DefaultName = "GraphQL"

// Source is an immutable document handed to a parser.
// Create it with NewSource, Load or Read and share it by pointer.
type Source struct {
	Name string // display label, usually a path
	Body string

	indexOnce sync.Once
	index     LineIndex
}

// Location represents a human-readable position in a Source.
type Location struct {
	Line   int // 1-based
	Column int // 0-based, in runes
}

// NewSource creates a Source, falling back to DefaultName when name is empty.
func NewSource(body, name string) *Source {
	if name == "" {
		name = DefaultName
	}
	return &Source{Name: name, Body: body}
}

// Index returns the line index of Body, built on first use.
// Safe for concurrent use.
func (s *Source) Index() LineIndex {
	s.indexOnce.Do(func() {
		s.index = BuildLineIndex(s.Body)
	})
	return s.index
}
