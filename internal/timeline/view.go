package timeline

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the ordering of the task view.
type SortKey string

const (
	SortByStart  SortKey = "start"
	SortByEnd    SortKey = "end"
	SortByStatus SortKey = "status"
)

// SortKeys lists the keys in selector order.
var SortKeys = []SortKey{SortByStart, SortByEnd, SortByStatus}

// ParseSortKey accepts "start", "end" or "status".
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want start, end or status)", s)
}

// Label is the selector text, e.g. "Sort by Start Time".
func (k SortKey) Label() string {
	switch k {
	case SortByStart:
		return "Sort by Start Time"
	case SortByEnd:
		return "Sort by End Time"
	case SortByStatus:
		return "Sort by Status"
	}
	return "Unsorted"
}

// Next returns the following key in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortKeys[0]
}

// Entry is a task in the view together with its position in the store.
type Entry struct {
	Index int
	Task  Task
}

// matches reports whether name contains query, ignoring case. An empty query
// matches every name.
func matches(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// Sort orders entries in place by key. The sort is stable; unknown keys leave
// the order as is.
func Sort(entries []Entry, key SortKey) {
	var less func(a, b Task) bool
	switch key {
	case SortByStart:
		less = func(a, b Task) bool { return a.Start < b.Start }
	case SortByEnd:
		less = func(a, b Task) bool { return a.End < b.End }
	case SortByStatus:
		less = func(a, b Task) bool { return a.Status < b.Status }
	default:
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Task, entries[j].Task)
	})
}

// Project keeps the tasks whose name contains query, ignoring case, and sorts
// the result by key. Each entry carries its store index.
func Project(s Store, query string, key SortKey) []Entry {
	entries := make([]Entry, 0, s.Len())
	for i, t := range s.tasks {
		if matches(t.Name, query) {
			entries = append(entries, Entry{Index: i, Task: t})
		}
	}
	Sort(entries, key)
	return entries
}
