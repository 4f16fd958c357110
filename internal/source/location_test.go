package source

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		offset int
		want   Location
	}{
		{name: "start", body: "abc", offset: 0, want: Location{Line: 1, Column: 0}},
		{name: "inside first line", body: "abc", offset: 2, want: Location{Line: 1, Column: 2}},
		{name: "second line start", body: "a\nb\nc", offset: 2, want: Location{Line: 2, Column: 0}},
		{name: "last line", body: "a\nb\nc", offset: 4, want: Location{Line: 3, Column: 0}},
		{name: "on terminator", body: "ab\ncd", offset: 2, want: Location{Line: 1, Column: 2}},
		{name: "on lf of crlf", body: "ab\r\ncd", offset: 3, want: Location{Line: 1, Column: 3}},
		{name: "after crlf", body: "ab\r\ncd", offset: 5, want: Location{Line: 2, Column: 1}},
		{name: "after lone cr", body: "a\rb", offset: 2, want: Location{Line: 2, Column: 0}},
		{name: "after line separator", body: "a\u2028bc", offset: 3, want: Location{Line: 2, Column: 1}},
		{name: "after paragraph separator", body: "a\u2029bc", offset: 2, want: Location{Line: 2, Column: 0}},
		{name: "runes not bytes", body: "€€x\n€y", offset: 6, want: Location{Line: 2, Column: 2}},
		{name: "negative clamps", body: "abc", offset: -5, want: Location{Line: 1, Column: 0}},
		{name: "past end clamps", body: "a\nbc", offset: 99, want: Location{Line: 2, Column: 2}},
		{name: "empty body", body: "", offset: 0, want: Location{Line: 1, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetLocation(NewSource(tt.body, "test"), tt.offset)
			if got != tt.want {
				t.Errorf("GetLocation(%q, %d) = %+v, want %+v", tt.body, tt.offset, got, tt.want)
			}
		})
	}
}

func TestGetLocationNilSource(t *testing.T) {
	if got := GetLocation(nil, 10); got != (Location{Line: 1}) {
		t.Errorf("expected 1:0 for nil source, got %+v", got)
	}
}

func TestIndexBuiltOnce(t *testing.T) {
	src := NewSource(strings.Repeat("abc\n", 1000), "test")

	var wg sync.WaitGroup
	locs := make([]Location, 64)
	for i := range locs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			locs[i] = GetLocation(src, i*4+1)
		}()
	}
	wg.Wait()

	for i, loc := range locs {
		if want := (Location{Line: i + 1, Column: 1}); loc != want {
			t.Errorf("offset %d: got %+v, want %+v", i*4+1, loc, want)
		}
	}
	first, second := src.Index(), src.Index()
	if first.Lines() != 1001 || &first[0] != &second[0] {
		t.Errorf("expected one shared index of 1001 lines, got %d lines", first.Lines())
	}
}

func TestNewSourceDefaultName(t *testing.T) {
	if got := NewSource("{}", "").Name; got != DefaultName {
		t.Errorf("expected default name %q, got %q", DefaultName, got)
	}
	if got := NewSource("{}", "schema.graphql").Name; got != "schema.graphql" {
		t.Errorf("expected explicit name to be kept, got %q", got)
	}
}

func TestLoadStripsBOMAndKeepsTerminators(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "query.graphql")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if src.Body != "a\r\nb" {
		t.Errorf("expected BOM stripped and CRLF kept, got %q", src.Body)
	}
	if src.Name != filepath.ToSlash(path) {
		t.Errorf("expected source named after path, got %q", src.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.graphql")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRead(t *testing.T) {
	src, err := Read(strings.NewReader("\xEF\xBB\xBFquery"), "<stdin>")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if src.Body != "query" || src.Name != "<stdin>" {
		t.Errorf("unexpected source %+v", src)
	}
}
