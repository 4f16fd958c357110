package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "empty", body: "", want: []string{""}},
		{name: "single line", body: "query", want: []string{"query"}},
		{name: "lf", body: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "crlf counts once", body: "a\r\nb", want: []string{"a", "b"}},
		{name: "lone cr", body: "a\rb", want: []string{"a", "b"}},
		{name: "line separator", body: "a\u2028b", want: []string{"a", "b"}},
		{name: "paragraph separator", body: "a\u2029b", want: []string{"a", "b"}},
		{name: "mixed", body: "a\r\nb\nc\rd\u2028e\u2029f", want: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "cr then crlf", body: "a\r\r\nb", want: []string{"a", "", "b"}},
		{name: "lf then cr", body: "a\n\rb", want: []string{"a", "", "b"}},
		{name: "trailing terminator", body: "a\n", want: []string{"a", ""}},
		{name: "multibyte text", body: "héllo\nwörld", want: []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.body)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.body, diff)
			}
		})
	}
}

func TestBuildLineIndexMatchesSplitLines(t *testing.T) {
	bodies := []string{
		"",
		"a",
		"a\nb\nc",
		"a\r\nb\r\n",
		"x\u2028yy\u2029zzz\rw",
		"€\n€€\n",
	}
	for _, body := range bodies {
		idx := BuildLineIndex(body)
		lines := SplitLines(body)
		if idx.Lines() != len(lines) {
			t.Errorf("body %q: index has %d lines, SplitLines has %d", body, idx.Lines(), len(lines))
		}
		if idx[0] != 0 {
			t.Errorf("body %q: first line starts at %d", body, idx[0])
		}
	}
}

func TestBuildLineIndexCountsRunes(t *testing.T) {
	got := BuildLineIndex("ab\r\n€d\ne")
	want := LineIndex{0, 4, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildLineIndex mismatch (-want +got):\n%s", diff)
	}
}
