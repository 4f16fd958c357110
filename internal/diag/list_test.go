package diag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"synerr/internal/source"
)

func TestNewResolvesPositions(t *testing.T) {
	src := source.NewSource("a\nbc", "test")
	err := New("bad", src, []int{0, 3})
	want := []source.Location{{Line: 1, Column: 0}, {Line: 2, Column: 1}}
	if diff := cmp.Diff(want, err.Locations); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}

	bare := New("bad", nil, []int{4})
	if bare.Locations != nil {
		t.Errorf("expected no locations without a source, got %+v", bare.Locations)
	}
	if _, ok := bare.Location(); ok {
		t.Errorf("expected Location() to report false without a source")
	}
}

func TestListLimit(t *testing.T) {
	l := NewList(2)
	src := source.NewSource("abc", "test")
	for i := 0; i < 3; i++ {
		added := l.Add(SyntaxError(src, i, "x"))
		if want := i < 2; added != want {
			t.Errorf("Add #%d returned %v, want %v", i, added, want)
		}
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 items, got %d", l.Len())
	}
	if l.Add(nil) {
		t.Errorf("nil errors must not be added")
	}

	unbounded := NewList(0)
	for i := 0; i < 100; i++ {
		unbounded.Add(New("e", nil, []int{i}))
	}
	if unbounded.Len() != 100 {
		t.Errorf("expected unbounded list to keep 100 items, got %d", unbounded.Len())
	}
}

func TestListSortAndDedup(t *testing.T) {
	a := source.NewSource("abc", "a.graphql")
	b := source.NewSource("abc", "b.graphql")

	l := NewList(0)
	l.Add(SyntaxError(b, 0, "first in b"))
	l.Add(SyntaxError(a, 2, "late in a"))
	l.Add(SyntaxError(a, 1, "early in a"))
	l.Add(SyntaxError(a, 1, "early in a"))

	l.Sort()
	l.Dedup()

	var got []string
	for _, e := range l.Items() {
		got = append(got, e.Description)
	}
	want := []string{"early in a", "late in a", "first in b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestListErr(t *testing.T) {
	l := NewList(0)
	if l.Err() != nil {
		t.Fatalf("expected nil error for empty list")
	}
	var nilList *List
	if nilList.Err() != nil {
		t.Fatalf("expected nil error for nil list")
	}

	l.Add(New("one", nil, nil))
	l.Add(New("two", nil, nil))
	err := l.Err()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	var target *List
	if !errors.As(err, &target) || target != l {
		t.Errorf("expected errors.As to recover the list")
	}
	if err.Error() != "one\ntwo" {
		t.Errorf("unexpected joined message %q", err.Error())
	}
}
