// Package keys defines the panel's key bindings.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the panel responds to.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
	Tab   key.Binding

	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Duplicate key.Binding
	Start     key.Binding
	Complete  key.Binding

	Search         key.Binding
	FilterPriority key.Binding
	FilterCategory key.Binding
	FilterStatus   key.Binding
	FilterMember   key.Binding
	ShowCompleted  key.Binding

	Members  key.Binding
	SubTasks key.Binding
	Assets   key.Binding
	Toggle   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "duplicate"),
		),
		Start: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "start"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		FilterPriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority filter"),
		),
		FilterCategory: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "category filter"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status filter"),
		),
		FilterMember: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "member filter"),
		),
		ShowCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle completed"),
		),
		Members: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "team"),
		),
		SubTasks: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "subtasks"),
		),
		Assets: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "assets"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}
