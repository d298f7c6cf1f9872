// Package tui is the interactive terminal view over a task store.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/output"
	"todo/internal/store"
	"todo/internal/todo"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	openStyle   = lipgloss.NewStyle()
	doneStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)
	editStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	helpNormal  = "j/k: move | space: toggle | a: add | e: edit | d: delete | q: quit"
	helpEditing = "enter: save | esc: cancel"
)

// Model renders the store's ordered view and turns key presses into
// store commands.
type Model struct {
	store *store.Store
	view  todo.TaskList

	cursor int

	// Editor state. editID is the task being renamed.
	editing bool
	editID  string
	input   []rune

	// opened records new tasks whose editor has already been opened.
	opened map[string]bool
}

// New creates a model over st.
func New(st *store.Store) Model {
	m := Model{
		store:  st,
		opened: make(map[string]bool),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ":
		if t, ok := m.current(); ok {
			m.store.Dispatch(todo.Toggle{ID: t.ID, Completed: !t.Completed})
			m.refresh()
			m.follow(t.ID)
		}
	case "a":
		m.store.Dispatch(todo.Add{})
		m.refresh()
	case "e", "enter":
		if t, ok := m.current(); ok {
			m.startEdit(t)
		}
	case "d", "x":
		if t, ok := m.current(); ok {
			m.store.Dispatch(todo.Remove{ID: t.ID})
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		m.store.Dispatch(todo.Edit{ID: m.editID, Title: string(m.input)})
		m.stopEdit()
		m.refresh()
	case tea.KeyEsc:
		m.stopEdit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	open, done := m.view.Counts()
	b.WriteString(titleStyle.Render(" Todo "))
	fmt.Fprintf(&b, "  %d open, %d done\n\n", open, done)

	if len(m.view) == 0 {
		b.WriteString("  " + output.EmptyMessage + "\n")
	}
	for i, t := range m.view {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		line := output.Checkbox(t.Completed) + " "
		switch {
		case m.editing && t.ID == m.editID:
			line = editStyle.Render(line + string(m.input) + "_")
		case t.Completed:
			line = doneStyle.Render(line + output.DisplayTitle(t.Title))
		default:
			line = openStyle.Render(line + output.DisplayTitle(t.Title))
		}
		b.WriteString(pointer + line + "\n")
	}

	help := helpNormal
	if m.editing {
		help = helpEditing
	}
	b.WriteString("\n" + helpStyle.Render(help) + "\n")
	return b.String()
}

// refresh re-reads the ordered view, keeps the cursor in range and opens
// the editor for a new task not yet seen.
func (m *Model) refresh() {
	m.view = m.store.Ordered()
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.editing {
		return
	}
	for i, t := range m.view {
		if t.IsNew && !m.opened[t.ID] {
			m.opened[t.ID] = true
			m.cursor = i
			m.startEdit(t)
			return
		}
	}
}

// follow moves the cursor to the task with id, if it is still listed.
func (m *Model) follow(id string) {
	if i := m.view.Index(id); i >= 0 {
		m.cursor = i
	}
}

func (m Model) current() (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return todo.Task{}, false
	}
	return m.view[m.cursor], true
}

func (m *Model) startEdit(t todo.Task) {
	m.editing = true
	m.editID = t.ID
	m.input = []rune(t.Title)
}

func (m *Model) stopEdit() {
	m.editing = false
	m.editID = ""
	m.input = nil
}
