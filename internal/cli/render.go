package cli

import (
	"fmt"

	"github.com/idilsaglam/todosync/internal/todo"
	"github.com/idilsaglam/todosync/internal/ui"
)

// renderList prints the framed list panel: header with counts, progress
// bar, then one row per item passing the filter.
func renderList(items []todo.Item, filter todo.Filter) {
	t := ui.Current()
	remaining := todo.Remaining(items)
	done := len(items) - remaining

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, "✔"), done,
		ui.C(t.Pending, "•"), remaining,
		ui.C(t.Accent, "Total"), len(items),
	)

	lines := []string{
		header,
		ui.C(t.Muted, ui.ProgressBar(done, len(items), 28)),
	}
	if filter != todo.FilterAll {
		lines = append(lines, ui.C(t.Accent, "filter: "+filter.String()))
	}
	lines = append(lines, "")
	lines = append(lines, itemLines(items, filter)...)
	ui.Panel(lines)
}

// itemLines keeps 1-based indexes from the unfiltered server order so
// `done <index>` works no matter which filter was displayed.
func itemLines(items []todo.Item, filter todo.Filter) []string {
	t := ui.Current()
	var out []string
	for i, it := range items {
		if !filter.Match(it) {
			continue
		}
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		title := it.Title
		if len([]rune(title)) > 60 {
			title = string([]rune(title)[:57]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)),
			ui.C(color, box),
			title,
			ui.C(t.Muted, "("+it.ID+")"),
		))
	}
	if len(out) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	return out
}
