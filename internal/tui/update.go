package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todosync/internal/todo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.loading = false
		m.items = msg.items
		if m.items == nil {
			m.items = []todo.Item{}
		}
		m.editor.resync(m.items)
		m.syncList()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.logger.Error("load failed", "err", msg.err)
		// A compensating refetch after a failed rename/delete keeps that
		// operation's message; a plain load failure overwrites it.
		if m.errMsg == "" {
			m.errMsg = msgLoadFailed
		}
		return m, nil

	case createdMsg:
		m.loading = false
		// Newly created items go to the front; server order wins again on
		// the next full fetch.
		m.items = append([]todo.Item{msg.item}, m.items...)
		m.adding = false
		m.addErr = ""
		m.input.SetValue("")
		m.input.Blur()
		m.syncList()
		return m, nil

	case createFailedMsg:
		m.loading = false
		m.logger.Error("create failed", "err", msg.err)
		m.errMsg = msgCreateFailed
		// The add bar stays open with the draft so the user can retry.
		return m, nil

	case toggleDoneMsg:
		if msg.err == nil {
			return m, nil
		}
		m.logger.Error("toggle failed", "id", msg.id, "err", msg.err)
		if i := m.indexOf(msg.id); i >= 0 {
			m.items[i].Completed = msg.prev
		}
		m.errMsg = msgToggleFailed
		m.syncList()
		return m, nil

	case renameDoneMsg:
		if msg.err == nil {
			return m, nil
		}
		m.logger.Error("rename failed", "id", msg.id, "err", msg.err)
		m.errMsg = msgRenameFailed
		// Discard the optimistic title by refetching everything.
		m.loading = true
		return m, m.fetchCmd()

	case deleteDoneMsg:
		if msg.err == nil {
			return m, nil
		}
		m.logger.Error("delete failed", "id", msg.id, "err", msg.err)
		m.errMsg = msgDeleteFailed
		// The item was removed optimistically; only the server knows the
		// truth now, so refetch.
		m.loading = true
		return m, m.fetchCmd()

	case clearDoneMsg:
		if msg.err == nil {
			return m, nil
		}
		m.logger.Error("clear completed failed", "err", msg.err)
		// All-or-nothing: restore the exact pre-clear snapshot even if
		// some deletes landed. The next fetch reconciles.
		m.items = msg.snapshot
		m.errMsg = msgClearFailed
		m.syncList()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleAddKey(msg)
	}
	if m.editor.active {
		return m.handleEditKey(msg)
	}
	// While the fuzzy find prompt is open the list owns every key.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.editor.start(it)
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		i := m.indexOf(it.ID)
		if i < 0 {
			return m, nil
		}
		prev := m.items[i].Completed
		m.items[i].Completed = !prev
		m.errMsg = ""
		m.syncList()
		return m, m.toggleCmd(it.ID, !prev, prev)

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if i := m.indexOf(it.ID); i >= 0 {
			m.items = append(m.items[:i], m.items[i+1:]...)
		}
		m.errMsg = ""
		m.syncList()
		return m, m.deleteCmd(it.ID)

	case key.Matches(msg, m.keys.Clear):
		completed := todo.FilterCompleted.Apply(m.items)
		if len(completed) == 0 {
			return m, nil
		}
		snapshot := todo.FilterAll.Apply(m.items)
		m.items = todo.FilterActive.Apply(m.items)
		m.errMsg = ""
		m.syncList()
		return m, m.clearCmd(snapshot, completed)

	case key.Matches(msg, m.keys.Cycle):
		m.filter = m.filter.Next()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.errMsg = ""
		return m, m.fetchCmd()

	case key.Matches(msg, m.keys.Yank):
		if it, ok := m.selected(); ok {
			if err := clipboard.WriteAll(it.Title); err != nil {
				m.logger.Warn("clipboard write failed", "err", err)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			// Local no-op: nothing goes over the wire.
			m.addErr = "Title cannot be empty"
			return m, nil
		}
		if m.loading {
			// One in-flight create at a time; ignore a double submit.
			return m, nil
		}
		m.addErr = ""
		m.errMsg = ""
		m.loading = true
		return m, m.createCmd(title)
	case "esc":
		m.adding = false
		m.addErr = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		id, title, ok := m.editor.commit()
		if !ok {
			// Empty draft: leave editing without touching anything.
			return m, nil
		}
		i := m.indexOf(id)
		if i < 0 {
			return m, nil
		}
		m.items[i].Title = title
		m.errMsg = ""
		m.syncList()
		return m, m.renameCmd(id, title)
	case "esc":
		m.editor.cancel()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	return m, cmd
}
