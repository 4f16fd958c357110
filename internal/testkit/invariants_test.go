package testkit

import (
	"strings"
	"testing"

	"synerr/internal/diag"
	"synerr/internal/source"
)

func TestSyntaxErrorsHoldInvariants(t *testing.T) {
	bodies := []string{
		"",
		"a",
		"a\nb\nc",
		"query {\r\n  field\r\n}",
		"x\ry\u2028z\u2029w\n",
		strings.Repeat("line\n", 12),
		"\t{ \"k\": 1 }\n",
		"名前 {\n  e\u0301tat\n}",
	}
	for _, body := range bodies {
		src := source.NewSource(body, "test")
		n := len([]rune(body))
		for off := 0; off <= n; off++ {
			if err := CheckSyntaxErrorInvariants(diag.SyntaxError(src, off, "Unexpected")); err != nil {
				t.Errorf("body %q offset %d: %v", body, off, err)
			}
		}
	}
}

func TestCheckSyntaxErrorInvariantsRejectsBrokenMessages(t *testing.T) {
	src := source.NewSource("a\nb\nc", "test")

	noCaret := diag.SyntaxError(src, 2, "Unexpected b")
	noCaret.Message = strings.Replace(noCaret.Message, "   ^\n", "", 1)
	if CheckSyntaxErrorInvariants(noCaret) == nil {
		t.Error("expected missing caret to be reported")
	}

	wrongHeader := diag.SyntaxError(src, 2, "Unexpected b")
	wrongHeader.Message = strings.Replace(wrongHeader.Message, "(2:0)", "(1:0)", 1)
	if CheckSyntaxErrorInvariants(wrongHeader) == nil {
		t.Error("expected wrong header to be reported")
	}

	shifted := diag.SyntaxError(src, 2, "Unexpected b")
	shifted.Message = strings.Replace(shifted.Message, "   ^\n", "    ^\n", 1)
	if CheckSyntaxErrorInvariants(shifted) == nil {
		t.Error("expected misplaced caret to be reported")
	}

	if CheckSyntaxErrorInvariants(diag.New("plain", nil, nil)) == nil {
		t.Error("expected error without source to be reported")
	}
}
