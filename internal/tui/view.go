package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/idilsaglam/todosync/internal/todo"
)

// rowDelegate renders each todo on a single line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, _ := item.(listRow)

	box := mutedStyle.Render(boxUnchecked)
	text := row.it.Title
	if row.it.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

func (m Model) View() string {
	listHeight := m.height - 5
	if m.adding || m.editor.active {
		listHeight -= 3
	}
	if m.errMsg != "" {
		listHeight -= 1
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	var b strings.Builder
	b.WriteString(m.filterTabs())
	if m.loading {
		b.WriteString("  " + m.spinner.View() + mutedStyle.Render("syncing..."))
	}
	b.WriteString("\n")
	b.WriteString(m.list.View())

	if m.adding || m.editor.active {
		b.WriteString("\n" + m.inputBar())
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(wordwrap.String("✖ "+m.errMsg, m.width-6)))
	}
	return panelStyle.Render(b.String())
}

func (m Model) filterTabs() string {
	tabs := make([]string, 0, 3)
	for _, f := range []todo.Filter{todo.FilterAll, todo.FilterActive, todo.FilterCompleted} {
		label := f.String()
		if f == m.filter {
			tabs = append(tabs, filterOnStyle.Render(label))
		} else {
			tabs = append(tabs, filterOffStyle.Render(label))
		}
	}
	return strings.Join(tabs, mutedStyle.Render(" · "))
}

func (m Model) inputBar() string {
	if m.editor.active {
		return panelStyle.Render("Rename todo\n" + m.editor.input.View())
	}
	title := "Add new todo"
	if m.addErr != "" {
		title += " — " + errorStyle.Render(m.addErr)
	}
	return panelStyle.Render(title + "\n" + m.input.View())
}
