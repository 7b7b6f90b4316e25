package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/idilsaglam/todosync/internal/todo"
)

// editor holds the transient inline-rename state for one item. It is kept
// apart from the canonical collection: the item only carries id/title/
// completed, the draft lives here, keyed by the item id.
type editor struct {
	active    bool
	id        string
	canonical string // last known server title, used for cancel/resync
	input     textinput.Model
}

func newEditor() editor {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Edit todo title..."
	ti.CharLimit = 200
	return editor{input: ti}
}

// start enters editing for the given item, seeding the draft with the
// canonical title.
func (e *editor) start(it todo.Item) {
	e.active = true
	e.id = it.ID
	e.canonical = it.Title
	e.input.SetValue(it.Title)
	e.input.CursorEnd()
	e.input.Focus()
}

// cancel discards the draft and returns to viewing.
func (e *editor) cancel() {
	e.active = false
	e.id = ""
	e.input.SetValue("")
	e.input.Blur()
}

// commit leaves editing and hands back the trimmed draft. ok is false when
// the draft trims to empty, in which case no rename should be issued.
func (e *editor) commit() (id, title string, ok bool) {
	id = e.id
	title = strings.TrimSpace(e.input.Value())
	ok = title != ""
	e.cancel()
	return id, title, ok
}

// resync follows external updates to the collection: if the edited item's
// canonical title changed (e.g. after a refetch) the draft snaps to it; if
// the item is gone the editor closes.
func (e *editor) resync(items []todo.Item) {
	if !e.active {
		return
	}
	for _, it := range items {
		if it.ID != e.id {
			continue
		}
		if it.Title != e.canonical {
			e.canonical = it.Title
			e.input.SetValue(it.Title)
			e.input.CursorEnd()
		}
		return
	}
	e.cancel()
}
