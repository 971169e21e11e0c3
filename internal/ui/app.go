package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"todopanel/internal/store"
	"todopanel/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewTasks View = iota
	ViewMembers
)

type App struct {
	repo        *store.Repository
	currentView View
	taskList    *views.TaskListView
	memberList  *views.MemberListView
	width       int
	height      int
}

// Creates a new application
func NewApp(repo *store.Repository) *App {
	return &App{
		repo:        repo,
		currentView: ViewTasks,
		taskList:    views.NewTaskListView(repo),
	}
}

func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Always update the task list size since it persists
		a.taskList.Update(msg)

	case views.ShowMembers:
		a.currentView = ViewMembers
		a.memberList = views.NewMemberListView(a.repo)
		return a, tea.Batch(
			a.memberList.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)

	case views.BackToTasks:
		a.currentView = ViewTasks
		// Assignments may have changed while the roster view was open.
		a.taskList = views.NewTaskListView(a.repo)
		return a, tea.Batch(
			a.taskList.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewTasks:
		_, cmd = a.taskList.Update(msg)
	case ViewMembers:
		_, cmd = a.memberList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewMembers:
		if a.memberList != nil {
			return a.memberList.View()
		}
	}
	return a.taskList.View()
}
