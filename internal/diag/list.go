package diag

import (
	"fmt"
	"sort"
	"strings"
)

// List collects errors up to a fixed limit.
type List struct {
	items []*Error
	max   int
}

// NewList returns a List that holds at most limit errors; limit <= 0 means no limit.
func NewList(limit int) *List {
	return &List{
		items: make([]*Error, 0, min(max(limit, 0), 64)),
		max:   limit,
	}
}

// Add appends e. It returns false when the limit has been reached.
func (l *List) Add(e *Error) bool {
	if e == nil {
		return false
	}
	if l.max > 0 && len(l.items) >= l.max {
		return false
	}
	l.items = append(l.items, e)
	return true
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns the collected errors. The slice is shared with the List.
func (l *List) Items() []*Error {
	return l.items
}

// Sort orders errors by source name, then first position, then message.
func (l *List) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		ei, ej := l.items[i], l.items[j]
		if ni, nj := sourceName(ei), sourceName(ej); ni != nj {
			return ni < nj
		}
		if pi, pj := firstPosition(ei), firstPosition(ej); pi != pj {
			return pi < pj
		}
		return ei.Message < ej.Message
	})
}

// Dedup drops errors with the same source, positions and message as an earlier one.
func (l *List) Dedup() {
	seen := make(map[string]struct{}, len(l.items))
	out := l.items[:0]
	for _, e := range l.items {
		key := fmt.Sprintf("%s|%v|%s", sourceName(e), e.Positions, e.Message)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	clear(l.items[len(out):])
	l.items = out
}

// Err returns nil for an empty List and the List itself otherwise.
func (l *List) Err() error {
	if l == nil || len(l.items) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	msgs := make([]string, 0, len(l.items))
	for _, e := range l.items {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "\n")
}

func sourceName(e *Error) string {
	if e.Source == nil {
		return ""
	}
	return e.Source.Name
}

func firstPosition(e *Error) int {
	if len(e.Positions) == 0 {
		return -1
	}
	return e.Positions[0]
}
