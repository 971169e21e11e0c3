package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todopanel/internal/model"
	"todopanel/internal/store"
	"todopanel/internal/ui/keys"
	"todopanel/internal/ui/styles"
)

// BackToTasks signals the app to return to the task list.
type BackToTasks struct{}

// MemberListView manages the team roster: adding members, toggling
// their active flag, and removing them (which unassigns them from
// every task).
type MemberListView struct {
	repo   *store.Repository
	styles *styles.Styles
	keys   keys.KeyMap

	members []model.TeamMember
	cursor  int
	width   int
	height  int

	adding    bool
	nameInput textinput.Model
	roleInput textinput.Model
	addFocus  int // 0=name, 1=role

	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string
}

// NewMemberListView creates the team member view.
func NewMemberListView(repo *store.Repository) *MemberListView {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = 100

	roleInput := textinput.New()
	roleInput.Placeholder = repo.Config().Defaults.MemberRole
	roleInput.CharLimit = 100

	v := &MemberListView{
		repo:      repo,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		nameInput: nameInput,
		roleInput: roleInput,
	}
	v.refresh()
	return v
}

// Init initializes the view
func (v *MemberListView) Init() tea.Cmd {
	return nil
}

func (v *MemberListView) refresh() {
	v.members = v.repo.Members()
	if v.cursor >= len(v.members) {
		v.cursor = max(0, len(v.members)-1)
	}
}

// Update handles messages
func (v *MemberListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.adding {
			return v.updateAdding(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *MemberListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToTasks{} }

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.members)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.adding = true
		v.addFocus = 0
		v.nameInput.Reset()
		v.roleInput.Reset()
		v.nameInput.Focus()
		v.roleInput.Blur()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(v.members) {
			m := v.members[v.cursor]
			v.confirmingDelete = true
			v.deleteTargetID = m.ID
			v.deleteTargetName = m.Name
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.cursor < len(v.members) {
			m := v.members[v.cursor]
			v.repo.SetMemberActive(m.ID, !m.IsActive)
			v.refresh()
		}
		return v, nil
	}

	return v, nil
}

func (v *MemberListView) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.adding = false
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.addFocus = (v.addFocus + 1) % 2
		v.updateAddFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.addFocus == 0 {
			v.addFocus = 1
			v.updateAddFocus()
			return v, nil
		}
		name := strings.TrimSpace(v.nameInput.Value())
		if name != "" {
			v.repo.AddTeamMember(name, strings.TrimSpace(v.roleInput.Value()))
		}
		v.adding = false
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	if v.addFocus == 0 {
		v.nameInput, cmd = v.nameInput.Update(msg)
	} else {
		v.roleInput, cmd = v.roleInput.Update(msg)
	}
	return v, cmd
}

func (v *MemberListView) updateAddFocus() {
	if v.addFocus == 0 {
		v.nameInput.Focus()
		v.roleInput.Blur()
	} else {
		v.nameInput.Blur()
		v.roleInput.Focus()
	}
}

func (v *MemberListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.repo.DeleteTeamMember(v.deleteTargetID)
		v.confirmingDelete = false
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

// View renders the view
func (v *MemberListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.adding {
		return v.renderAddForm()
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	var items []string
	for i, m := range v.members {
		badge := styles.Badge(m.Color).Render(m.Initials)
		line := badge + " " + m.Name
		if m.Role != "" {
			line += s.TitleMuted.Render(" · " + m.Role)
		}
		if !m.IsActive {
			line += s.TitleMuted.Render(" (inactive)")
		}
		itemStyle := s.ListItem
		if i == v.cursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Width(width).Render(line))
	}
	if len(items) == 0 {
		items = append(items, s.TitleMuted.Render("No team members. Press 'n' to add one."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Team Members"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
		"",
		s.StatusBar.Render(fmt.Sprintf("Members: %d", len(v.members))),
		s.Help.Render(
			fmt.Sprintf("%s add • %s delete • %s active on/off • %s back • %s quit",
				s.HelpKey.Render("n"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("space"),
				s.HelpKey.Render("esc"),
				s.HelpKey.Render("q"),
			),
		),
	)

	return styles.CenterView(content, v.width, v.height)
}

func (v *MemberListView) renderAddForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	nameStyle, roleStyle := s.InputFocused, s.Input
	if v.addFocus == 1 {
		nameStyle, roleStyle = s.Input, s.InputFocused
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Team Member"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.nameInput.View()),
		"",
		"Role:",
		roleStyle.Width(inputWidth).Render(v.roleInput.View()),
		"",
		s.TitleMuted.Render("Tab: next • Enter: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *MemberListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Team Member?"),
		"",
		s.TitleMuted.Render(v.deleteTargetName),
		s.TitleMuted.Render("They will be unassigned from every task."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
