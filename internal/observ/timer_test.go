package observ

import (
	"strings"
	"testing"
)

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	load := timer.Begin("load")
	timer.End(load, "2 files")
	render := timer.Begin("render")
	timer.End(render, "")
	timer.End(42, "ignored")

	if len(timer.Phases()) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(timer.Phases()))
	}
	summary := timer.Summary()
	for _, part := range []string{"timings:\n", "load", "// 2 files", "render", "total"} {
		if !strings.Contains(summary, part) {
			t.Errorf("expected summary to contain %q, got:\n%s", part, summary)
		}
	}
	if strings.Contains(summary, "ignored") {
		t.Errorf("out-of-range End must be ignored")
	}
}
