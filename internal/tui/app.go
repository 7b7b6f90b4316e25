// Package tui is the interactive Bubble Tea interface. Its model owns the
// cached todo collection and keeps it converged with the remote service:
// every mutation patches the collection first, then confirms over HTTP and
// compensates (revert or refetch) when the call fails.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todosync/internal/api"
	"github.com/idilsaglam/todosync/internal/todo"
)

// Backend is the slice of the remote client the TUI needs. Declared here
// so tests can swap in a fake without a server.
type Backend interface {
	List(ctx context.Context) ([]todo.Item, error)
	Create(ctx context.Context, title string) (todo.Item, error)
	Update(ctx context.Context, id string, patch api.Patch) error
	Delete(ctx context.Context, id string) error
}

// listRow adapts a todo.Item to bubbles/list.Item.
type listRow struct {
	it todo.Item
}

func (r listRow) Title() string       { return r.it.Title }
func (r listRow) Description() string { return "" }
func (r listRow) FilterValue() string { return r.it.Title }

// Model is the single source of truth for the collection, the view filter
// and the transient loading/error flags.
type Model struct {
	backend Backend
	logger  *log.Logger

	// canonical cached state
	items   []todo.Item
	filter  todo.Filter
	loading bool
	errMsg  string

	// create draft
	adding bool
	addErr string // local validation hint, not a remote error
	input  textinput.Model

	// per-item inline rename
	editor editor

	list    list.Model
	spinner spinner.Model

	width, height int

	keys keyMap
}

type keyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Cycle  key.Binding
	Reload key.Binding
	Yank   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Cycle:  key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "filter")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// New builds the TUI model around a backend.
func New(backend Backend, logger *log.Logger) Model {
	keys := defaultKeyMap()

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	extra := func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete, keys.Clear, keys.Cycle, keys.Reload, keys.Yank}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	m := Model{
		backend: backend,
		logger:  logger,
		loading: true, // Init fires the first fetch
		items:   []todo.Item{},
		filter:  todo.FilterAll,
		input:   ti,
		editor:  newEditor(),
		list:    l,
		spinner: sp,
		width:   80,
		height:  24,
		keys:    keys,
	}
	m.syncList()
	return m
}

// Init kicks off the initial full fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

// Run starts the program on the alternate screen.
func Run(backend Backend, logger *log.Logger) error {
	p := tea.NewProgram(New(backend, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// syncList pushes the filtered view into the bubbles list and refreshes
// the header counts.
func (m *Model) syncList() {
	view := m.filter.Apply(m.items)
	rows := make([]list.Item, 0, len(view))
	for _, it := range view {
		rows = append(rows, listRow{it: it})
	}
	m.list.SetItems(rows)

	remaining := todo.Remaining(m.items)
	done := len(m.items) - remaining
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), remaining,
		accentStyle.Render("Total"), len(m.items),
	)
}

// selected returns the item under the cursor in the filtered view.
func (m Model) selected() (todo.Item, bool) {
	row, ok := m.list.SelectedItem().(listRow)
	if !ok {
		return todo.Item{}, false
	}
	return row.it, true
}

// indexOf finds an item in the canonical collection by id.
func (m Model) indexOf(id string) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
