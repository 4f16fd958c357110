package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleList(), JSONOpts{IncludeSource: true}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || out.Total != 2 {
		t.Errorf("expected count=2 total=2, got count=%d total=%d", out.Count, out.Total)
	}

	first := out.Errors[0]
	if first.Source == nil || first.Source.Name != "test" {
		t.Errorf("expected source name test, got %+v", first.Source)
	}
	if diff := cmp.Diff([]int{2}, first.Positions); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]LocationJSON{{Line: 2, Column: 0}}, first.Locations); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
	if first.Description != "Unexpected b" {
		t.Errorf("unexpected description %q", first.Description)
	}
}

func TestJSONOmitsSourceByDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleList(), JSONOpts{}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"source"`)) {
		t.Errorf("expected no source field, got:\n%s", buf.String())
	}
}

func TestBuildOutputMax(t *testing.T) {
	out := BuildOutput(sampleList(), JSONOpts{Max: 1})
	if out.Count != 1 || out.Total != 2 || len(out.Errors) != 1 {
		t.Errorf("expected one of two errors, got %+v", out)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	list := sampleList()
	var buf bytes.Buffer
	if err := Msgpack(&buf, list, JSONOpts{IncludeSource: true}); err != nil {
		t.Fatalf("Msgpack returned error: %v", err)
	}

	got, err := DecodeMsgpack(&buf)
	if err != nil {
		t.Fatalf("DecodeMsgpack returned error: %v", err)
	}
	want := BuildOutput(list, JSONOpts{IncludeSource: true})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("msgpack round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDispatch(t *testing.T) {
	list := sampleList()
	for _, format := range []Format{FormatPretty, FormatJSON, FormatMsgpack} {
		var buf bytes.Buffer
		if err := Write(&buf, list, format, PrettyOpts{}, JSONOpts{}); err != nil {
			t.Fatalf("Write(%v) returned error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%v) produced no output", format)
		}
	}
}
