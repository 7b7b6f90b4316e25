// Package todo holds the domain model shared by the TUI, the CLI and the
// remote client.
package todo

// Item is the domain model for a todo entry. The remote service owns it;
// everything local is a cached copy. Field tags match the wire format.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter selects which items a view shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Match reports whether the item passes the filter predicate.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterActive:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	default:
		return true
	}
}

// Apply returns the items passing the filter, preserving order.
// The input slice is never mutated.
func (f Filter) Apply(items []Item) []Item {
	if f == FilterAll {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Remaining counts items not yet completed.
func Remaining(items []Item) int {
	n := 0
	for _, it := range items {
		if !it.Completed {
			n++
		}
	}
	return n
}
