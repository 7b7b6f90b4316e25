package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/todosync/internal/api"
	"github.com/idilsaglam/todosync/internal/todo"
)

// Result messages. Each remote operation reports back with exactly one of
// these; the Update loop applies the compensating action on failure.
type (
	itemsLoadedMsg struct{ items []todo.Item }
	loadFailedMsg  struct{ err error }

	createdMsg      struct{ item todo.Item }
	createFailedMsg struct{ err error }

	// toggleDoneMsg carries the pre-toggle value so a failure can revert
	// the flag to exactly what it was.
	toggleDoneMsg struct {
		id   string
		prev bool
		err  error
	}

	renameDoneMsg struct {
		id  string
		err error
	}

	deleteDoneMsg struct {
		id  string
		err error
	}

	// clearDoneMsg carries the pre-clear snapshot for the all-or-nothing
	// revert.
	clearDoneMsg struct {
		snapshot []todo.Item
		err      error
	}
)

// User-facing failure messages. One flavor of error only; causes are not
// differentiated (the log has the detail).
const (
	msgLoadFailed   = "could not load todos"
	msgCreateFailed = "could not add todo"
	msgToggleFailed = "could not update todo"
	msgRenameFailed = "could not rename todo"
	msgDeleteFailed = "could not delete todo"
	msgClearFailed  = "could not clear completed todos"
)

func (m Model) fetchCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		items, err := backend.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return itemsLoadedMsg{items: items}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		created, err := backend.Create(context.Background(), title)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return createdMsg{item: created}
	}
}

func (m Model) toggleCmd(id string, completed, prev bool) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		c := completed
		err := backend.Update(context.Background(), id, api.Patch{Completed: &c})
		return toggleDoneMsg{id: id, prev: prev, err: err}
	}
}

func (m Model) renameCmd(id, title string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		t := title
		err := backend.Update(context.Background(), id, api.Patch{Title: &t})
		return renameDoneMsg{id: id, err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		err := backend.Delete(context.Background(), id)
		return deleteDoneMsg{id: id, err: err}
	}
}

// clearCmd deletes every item in removed concurrently. A single failure
// fails the whole batch; the caller restores the snapshot verbatim, even
// for deletes that did land server-side.
func (m Model) clearCmd(snapshot, removed []todo.Item) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())
		for _, it := range removed {
			id := it.ID
			g.Go(func() error {
				return backend.Delete(ctx, id)
			})
		}
		if err := g.Wait(); err != nil {
			return clearDoneMsg{snapshot: snapshot, err: err}
		}
		return clearDoneMsg{}
	}
}
