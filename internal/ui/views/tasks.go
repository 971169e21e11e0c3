package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todopanel/internal/config"
	"todopanel/internal/model"
	"todopanel/internal/query"
	"todopanel/internal/store"
	"todopanel/internal/ui/keys"
	"todopanel/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusTaskList
)

// ShowMembers signals the app to open the team member view.
type ShowMembers struct{}

// TaskListView is the panel's main view: the filtered task list, the add/
// edit form, the task detail view, and the subtask/member/asset modes.
// All state changes go through the repository; the visible list is
// re-derived from it after every mutation.
type TaskListView struct {
	repo   *store.Repository
	cfg    config.Config
	styles *styles.Styles
	keys   keys.KeyMap

	criteria query.Criteria
	tasks    []model.Task

	width  int
	height int

	focus       FocusArea
	cursor      int
	scrollY     int
	searchInput textinput.Model

	// Task creation/editing
	editing      bool
	editingNew   bool
	editTaskID   string
	editTitle    textinput.Model
	editDesc     textarea.Model
	editDue      textinput.Model
	editEstimate textinput.Model
	editActual   textinput.Model
	editPriority model.Priority
	editCategory model.Category
	editStatus   model.Status
	editFocusIdx int // 0=title, 1=desc, 2=due, 3=priority, 4=category, 5=status, 6=est, 7=actual, 8=save

	// Task detail view (read-only except mode shortcuts)
	viewingTask  bool
	detailTaskID string

	// Subtask checklist mode
	subTaskMode   bool
	subCursor     int
	addingSubTask bool
	subTaskInput  textinput.Model

	// Member assignment mode
	assignMode   bool
	assignCursor int

	// Asset reference mode
	assetMode   bool
	assetCursor int
	addingAsset bool
	assetInput  textinput.Model

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string
}

// NewTaskListView creates the main panel view.
func NewTaskListView(repo *store.Repository) *TaskListView {
	s := styles.NewStyles()
	cfg := repo.Config()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editDue := textinput.New()
	editDue.Placeholder = "yyyy-mm-dd"
	editDue.CharLimit = 10

	editEstimate := textinput.New()
	editEstimate.Placeholder = "hours"
	editEstimate.CharLimit = 4

	editActual := textinput.New()
	editActual.Placeholder = "hours"
	editActual.CharLimit = 4

	subTaskInput := textinput.New()
	subTaskInput.Placeholder = "Subtask title"
	subTaskInput.CharLimit = 200

	assetInput := textinput.New()
	assetInput.Placeholder = "Asset GUID or path"
	assetInput.CharLimit = 200

	criteria := query.Default()
	criteria.ShowCompleted = cfg.Behavior.ShowCompleted

	v := &TaskListView{
		repo:         repo,
		cfg:          cfg,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		criteria:     criteria,
		focus:        FocusTaskList,
		searchInput:  search,
		editTitle:    editTitle,
		editDesc:     editDesc,
		editDue:      editDue,
		editEstimate: editEstimate,
		editActual:   editActual,
		subTaskInput: subTaskInput,
		assetInput:   assetInput,
	}
	v.refresh()
	return v
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return nil
}

// refresh re-derives the visible task list from the repository.
func (v *TaskListView) refresh() {
	v.criteria.Search = v.searchInput.Value()
	v.tasks = query.Apply(v.repo.Tasks(), v.criteria)
	if v.cursor >= len(v.tasks) {
		v.cursor = max(0, len(v.tasks)-1)
	}
}

// selected returns the task under the cursor.
func (v *TaskListView) selected() (model.Task, bool) {
	if len(v.tasks) == 0 || v.cursor >= len(v.tasks) {
		return model.Task{}, false
	}
	return v.tasks[v.cursor], true
}

// detailTask re-reads the detail task from the repository so the modes
// always render fresh state.
func (v *TaskListView) detailTask() (model.Task, bool) {
	return v.repo.Task(v.detailTaskID)
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		if v.subTaskMode {
			return v.updateSubTasks(msg)
		}
		if v.assignMode {
			return v.updateAssigning(msg)
		}
		if v.assetMode {
			return v.updateAssets(msg)
		}
		if v.viewingTask {
			return v.updateViewingTask(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search typing takes precedence over hotkeys.
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			v.refresh()
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.refresh()
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		// Esc clears every filter back to the defaults.
		v.searchInput.Reset()
		v.criteria = query.Default()
		v.criteria.ShowCompleted = v.cfg.Behavior.ShowCompleted
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if task, ok := v.selected(); ok {
			v.viewingTask = true
			v.detailTaskID = task.ID
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if task, ok := v.selected(); ok {
			v.startEditTask(task)
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if task, ok := v.selected(); ok {
			v.confirmingDelete = true
			v.deleteTargetID = task.ID
			v.deleteTargetName = task.Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Duplicate):
		if task, ok := v.selected(); ok {
			v.repo.DuplicateTask(task.ID)
			v.refresh()
		}
		return v, nil

	case key.Matches(msg, v.keys.Start):
		if task, ok := v.selected(); ok {
			if task.Status != model.StatusInProgress && task.Status != model.StatusCompleted {
				v.repo.StartTask(task.ID)
				v.refresh()
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Complete):
		if task, ok := v.selected(); ok {
			if task.Status == model.StatusInProgress {
				v.repo.CompleteTask(task.ID)
				v.refresh()
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.FilterPriority):
		v.criteria.Priority = cyclePriority(v.criteria.Priority)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.FilterCategory):
		v.criteria.Category = cycleCategory(v.criteria.Category)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.FilterStatus):
		v.criteria.Status = cycleStatus(v.criteria.Status)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.FilterMember):
		v.criteria.AssignedMember = v.cycleMemberFilter(v.criteria.AssignedMember)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.ShowCompleted):
		v.criteria.ShowCompleted = !v.criteria.ShowCompleted
		v.cursor = 0
		v.scrollY = 0
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Members):
		return v, func() tea.Msg { return ShowMembers{} }
	}

	return v, nil
}

// cyclePriority steps the priority filter through All and every priority.
func cyclePriority(p model.Priority) model.Priority {
	order := append([]model.Priority{model.PriorityAll}, model.Priorities...)
	for i, cur := range order {
		if cur == p {
			return order[(i+1)%len(order)]
		}
	}
	return model.PriorityAll
}

func cycleCategory(c model.Category) model.Category {
	order := append([]model.Category{model.CategoryAll}, model.Categories...)
	for i, cur := range order {
		if cur == c {
			return order[(i+1)%len(order)]
		}
	}
	return model.CategoryAll
}

func cycleStatus(s model.Status) model.Status {
	order := append([]model.Status{model.StatusAll}, model.Statuses...)
	for i, cur := range order {
		if cur == s {
			return order[(i+1)%len(order)]
		}
	}
	return model.StatusAll
}

// cycleMemberFilter steps through All plus every active member.
func (v *TaskListView) cycleMemberFilter(current string) string {
	order := []string{query.AllMembers}
	for _, m := range v.repo.ActiveMembers() {
		order = append(order, m.ID)
	}
	for i, cur := range order {
		if cur == current {
			return order[(i+1)%len(order)]
		}
	}
	return query.AllMembers
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.repo.DeleteTask(v.deleteTargetID)
		v.confirmingDelete = false
		if v.viewingTask && v.detailTaskID == v.deleteTargetID {
			v.viewingTask = false
		}
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateViewingTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.detailTask()
	if !ok {
		v.viewingTask = false
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewingTask = false
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		v.startEditTask(task)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		v.confirmingDelete = true
		v.deleteTargetID = task.ID
		v.deleteTargetName = task.Title
		return v, nil

	case key.Matches(msg, v.keys.Duplicate):
		v.repo.DuplicateTask(task.ID)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Start):
		v.repo.StartTask(task.ID)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.Complete):
		v.repo.CompleteTask(task.ID)
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keys.SubTasks):
		v.subTaskMode = true
		v.subCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.FilterMember):
		v.assignMode = true
		v.assignCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Assets):
		v.assetMode = true
		v.assetCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *TaskListView) updateSubTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.detailTask()
	if !ok {
		v.subTaskMode = false
		return v, nil
	}

	if v.addingSubTask {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.addingSubTask = false
			v.subTaskInput.Reset()
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			title := strings.TrimSpace(v.subTaskInput.Value())
			if title != "" {
				v.repo.AddSubTask(task.ID, title)
			}
			v.addingSubTask = false
			v.subTaskInput.Reset()
			v.refresh()
			return v, nil
		default:
			var cmd tea.Cmd
			v.subTaskInput, cmd = v.subTaskInput.Update(msg)
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.subTaskMode = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.subCursor > 0 {
			v.subCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.subCursor < len(task.SubTasks)-1 {
			v.subCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.subCursor < len(task.SubTasks) {
			st := task.SubTasks[v.subCursor]
			v.repo.SetSubTaskCompletion(task.ID, st.ID, !st.IsCompleted)
			v.refresh()
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.addingSubTask = true
		v.subTaskInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.subCursor < len(task.SubTasks) {
			v.repo.RemoveSubTask(task.ID, task.SubTasks[v.subCursor].ID)
			if v.subCursor > 0 {
				v.subCursor--
			}
			v.refresh()
		}
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateAssigning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.detailTask()
	if !ok {
		v.assignMode = false
		return v, nil
	}
	members := v.repo.ActiveMembers()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.assignMode = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.assignCursor > 0 {
			v.assignCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.assignCursor < len(members)-1 {
			v.assignCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.assignCursor < len(members) {
			m := members[v.assignCursor]
			if task.HasAssignedMember(m.ID) {
				v.repo.UnassignMember(task.ID, m.ID)
			} else {
				v.repo.AssignMember(task.ID, m.ID)
			}
			v.refresh()
		}
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateAssets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.detailTask()
	if !ok {
		v.assetMode = false
		return v, nil
	}

	if v.addingAsset {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.addingAsset = false
			v.assetInput.Reset()
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			assetID := strings.TrimSpace(v.assetInput.Value())
			if assetID != "" {
				v.repo.AddAssetReference(task.ID, assetID)
			}
			v.addingAsset = false
			v.assetInput.Reset()
			v.refresh()
			return v, nil
		default:
			var cmd tea.Cmd
			v.assetInput, cmd = v.assetInput.Update(msg)
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.assetMode = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.assetCursor > 0 {
			v.assetCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.assetCursor < len(task.ReferencedAssetGUIDs)-1 {
			v.assetCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.addingAsset = true
		v.assetInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.assetCursor < len(task.ReferencedAssetGUIDs) {
			v.repo.RemoveAssetReference(task.ID, task.ReferencedAssetGUIDs[v.assetCursor])
			if v.assetCursor > 0 {
				v.assetCursor--
			}
			v.refresh()
		}
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const fieldCount = 9

	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		v.saveTask()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % fieldCount
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + fieldCount - 1) % fieldCount
		v.updateEditFocus()
		return v, nil

	case msg.String() == "left", msg.String() == "right":
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		switch v.editFocusIdx {
		case 3:
			v.editPriority = stepEnum(model.Priorities, v.editPriority, step)
			return v, nil
		case 4:
			v.editCategory = stepEnum(model.Categories, v.editCategory, step)
			return v, nil
		case 5:
			v.editStatus = stepEnum(model.Statuses, v.editStatus, step)
			return v, nil
		}

	case key.Matches(msg, v.keys.Enter):
		// Enter on single-line fields advances; on the save button it saves.
		switch v.editFocusIdx {
		case 0, 2, 3, 4, 5, 6, 7:
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		case 8:
			v.saveTask()
			return v, nil
		}
		// The description textarea keeps enter for newlines.
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case 0:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case 2:
		v.editDue, cmd = v.editDue.Update(msg)
	case 6:
		v.editEstimate, cmd = v.editEstimate.Update(msg)
	case 7:
		v.editActual, cmd = v.editActual.Update(msg)
	}
	return v, cmd
}

// stepEnum moves through the storable values of an enum, wrapping around.
func stepEnum[T comparable](order []T, current T, step int) T {
	for i, cur := range order {
		if cur == current {
			return order[(i+step+len(order))%len(order)]
		}
	}
	return order[0]
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingNew = true
	v.editTaskID = ""
	v.editFocusIdx = 0
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editDue.SetValue(v.cfg.DefaultDueDate(model.Today()).String())
	v.editEstimate.SetValue(strconv.Itoa(v.cfg.Defaults.EstimateHours))
	v.editActual.SetValue("0")
	v.editPriority = v.cfg.DefaultPriority()
	v.editCategory = v.cfg.DefaultCategory()
	v.editStatus = v.cfg.DefaultStatus()
	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task model.Task) {
	v.editing = true
	v.editingNew = false
	v.editTaskID = task.ID
	v.editFocusIdx = 0
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editDue.SetValue(task.DueDate.String())
	v.editEstimate.SetValue(strconv.Itoa(task.EstimatedHours))
	v.editActual.SetValue(strconv.Itoa(task.ActualHours))
	v.editPriority = task.Priority
	v.editCategory = task.Category
	v.editStatus = task.Status
	v.updateEditFocus()
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDue.Blur()
	v.editEstimate.Blur()
	v.editActual.Blur()

	switch v.editFocusIdx {
	case 0:
		v.editTitle.Focus()
	case 1:
		v.editDesc.Focus()
	case 2:
		v.editDue.Focus()
	case 6:
		v.editEstimate.Focus()
	case 7:
		v.editActual.Focus()
	}
}

// saveTask commits the edit form through the repository. An empty title
// cancels, mirroring the presentation-layer validation contract.
func (v *TaskListView) saveTask() {
	title := strings.TrimSpace(v.editTitle.Value())
	if title == "" {
		v.editing = false
		return
	}

	due, err := model.ParseDate(strings.TrimSpace(v.editDue.Value()))
	if err != nil {
		// Keep the form open so the date can be corrected.
		v.editFocusIdx = 2
		v.updateEditFocus()
		return
	}

	estimate, _ := strconv.Atoi(v.editEstimate.Value())
	actual, _ := strconv.Atoi(v.editActual.Value())

	fields := store.TaskFields{
		Title:          title,
		Description:    strings.TrimSpace(v.editDesc.Value()),
		DueDate:        due,
		Priority:       v.editPriority,
		Category:       v.editCategory,
		Status:         v.editStatus,
		EstimatedHours: max(estimate, 0),
		ActualHours:    max(actual, 0),
	}

	if v.editingNew {
		v.repo.AddTask(fields)
	} else {
		v.repo.EditTask(v.editTaskID, fields)
	}

	v.editing = false
	v.refresh()
}

func (v *TaskListView) ensureVisible() {
	// Each task row is 2 lines + 1 margin.
	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// View renders the view
func (v *TaskListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.editing {
		return v.renderEditForm()
	}
	if v.subTaskMode {
		return v.renderSubTasks()
	}
	if v.assignMode {
		return v.renderAssigning()
	}
	if v.assetMode {
		return v.renderAssets()
	}
	if v.viewingTask {
		return v.renderTaskDetail()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderStats())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	title := s.Title.Render("TODO Panel")

	filters := lipgloss.JoinHorizontal(lipgloss.Center,
		v.renderFilterChip("priority", string(v.criteria.Priority), v.criteria.Priority != model.PriorityAll),
		"  ",
		v.renderFilterChip("category", string(v.criteria.Category), v.criteria.Category != model.CategoryAll),
		"  ",
		v.renderFilterChip("status", v.criteria.Status.Label(), v.criteria.Status != model.StatusAll),
		"  ",
		v.renderFilterChip("member", v.memberFilterLabel(), v.criteria.AssignedMember != query.AllMembers),
		"  ",
		v.renderFilterChip("completed", showHideLabel(v.criteria.ShowCompleted), !v.criteria.ShowCompleted),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Center, searchBox),
		filters,
	)
}

func showHideLabel(show bool) string {
	if show {
		return "shown"
	}
	return "hidden"
}

func (v *TaskListView) memberFilterLabel() string {
	if v.criteria.AssignedMember == query.AllMembers {
		return "All"
	}
	if m, ok := v.repo.Member(v.criteria.AssignedMember); ok {
		return m.Name
	}
	return "All"
}

func (v *TaskListView) renderFilterChip(label, value string, active bool) string {
	s := v.styles
	text := label + ": " + value
	if active {
		return s.FilterActive.Render(text)
	}
	return s.TitleMuted.Render(text)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one.")
	}

	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	var items []string
	endIdx := min(v.scrollY+visibleItems, len(v.tasks))

	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskRow(v.tasks[i], i == v.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskRow(task model.Task, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)
	today := model.Today()

	glyph := styles.Colored(v.cfg.StatusColor(task.Status)).Render(task.Status.Glyph())
	priority := styles.Colored(v.cfg.PriorityColor(task.Priority)).Render("[" + string(task.Priority) + "]")
	titleLine := glyph + " " + priority + " " + task.Title

	// Second line: category, due date, subtask progress, member badges.
	category := styles.Colored(v.cfg.CategoryColor(task.Category)).Render(string(task.Category))

	dueStyle := s.TaskDue
	if task.IsOverdue(today) {
		dueStyle = s.TaskOverdue
	} else if v.cfg.DueSoon(task.DueDate, today) {
		dueStyle = s.TaskDueSoon
	}
	due := ""
	if !task.DueDate.IsZero() {
		due = dueStyle.Render("due " + task.DueDate.String())
	}

	progress := ""
	if done, total := task.SubTaskProgress(); total > 0 {
		progress = s.Progress.Render(fmt.Sprintf("%d/%d", done, total))
	}

	var badges []string
	for _, id := range task.AssignedMembers {
		if m, ok := v.repo.Member(id); ok {
			badges = append(badges, styles.Badge(m.Color).Render(m.Initials))
		}
	}

	parts := []string{category}
	if due != "" {
		parts = append(parts, due)
	}
	if progress != "" {
		parts = append(parts, progress)
	}
	if len(badges) > 0 {
		parts = append(parts, strings.Join(badges, " "))
	}
	detailLine := strings.Join(parts, "  ")

	var titleStyle, detailStyle lipgloss.Style
	if selected {
		titleStyle = s.ListSelected.Width(width)
		detailStyle = s.ListSelected.Width(width)
	} else {
		titleStyle = s.ListItem.Width(width)
		detailStyle = s.ListItem.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(titleLine),
		detailStyle.Render(detailLine),
	) + "\n"
}

func (v *TaskListView) renderStats() string {
	stats := query.Count(v.tasks, model.Today())
	return v.styles.StatusBar.Render(fmt.Sprintf(
		"Total: %d  Completed: %d  In Progress: %d  Overdue: %d",
		stats.Total, stats.Completed, stats.InProgress, stats.Overdue,
	))
}

func (v *TaskListView) renderHelp() string {
	s := v.styles
	return s.Help.Render(
		fmt.Sprintf("%s view • %s new • %s edit • %s del • %s dup • %s start • %s done • %s search • %s/%s/%s/%s filters • %s completed • %s team • %s quit",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("u"),
			s.HelpKey.Render("o"),
			s.HelpKey.Render("x"),
			s.HelpKey.Render("/"),
			s.HelpKey.Render("p"),
			s.HelpKey.Render("g"),
			s.HelpKey.Render("s"),
			s.HelpKey.Render("m"),
			s.HelpKey.Render("c"),
			s.HelpKey.Render("M"),
			s.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	fieldStyles := make([]lipgloss.Style, 9)
	for i := range fieldStyles {
		fieldStyles[i] = s.Input
	}
	btnStyle := s.Button
	if v.editFocusIdx == 8 {
		btnStyle = s.ButtonFocused
	} else {
		fieldStyles[v.editFocusIdx] = s.InputFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		fieldStyles[0].Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		fieldStyles[1].Render(v.editDesc.View()),
		"",
		"Due date:",
		fieldStyles[2].Width(14).Render(v.editDue.View()),
		"",
		"Priority:",
		fieldStyles[3].Render(v.renderSelector(string(v.editPriority), v.editFocusIdx == 3)),
		"",
		"Category:",
		fieldStyles[4].Render(v.renderSelector(string(v.editCategory), v.editFocusIdx == 4)),
		"",
		"Status:",
		fieldStyles[5].Render(v.renderSelector(v.editStatus.Label(), v.editFocusIdx == 5)),
		"",
		"Estimated hours:",
		fieldStyles[6].Width(8).Render(v.editEstimate.View()),
		"",
		"Actual hours:",
		fieldStyles[7].Width(8).Render(v.editActual.View()),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • ←→: change selection • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderSelector(value string, focused bool) string {
	if focused {
		return "◀ " + value + " ▶"
	}
	return "  " + value
}

func (v *TaskListView) renderTaskDetail() string {
	task, ok := v.detailTask()
	if !ok {
		return ""
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	labelStyle := s.TitleMuted
	textWidth := clamp(contentWidth-10, 20, 70)
	today := model.Today()

	descText := task.Description
	if descText == "" {
		descText = s.TitleMuted.Render("No description")
	}

	dueStyle := s.TaskDue
	if task.IsOverdue(today) {
		dueStyle = s.TaskOverdue
	} else if v.cfg.DueSoon(task.DueDate, today) {
		dueStyle = s.TaskDueSoon
	}
	dueText := dueStyle.Render(task.DueDate.String())
	if task.DueDate.IsZero() {
		dueText = s.TitleMuted.Render("None")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(task.Title),
		"",
		labelStyle.Render("Status"),
		styles.Colored(v.cfg.StatusColor(task.Status)).Render(task.Status.Glyph()+" "+task.Status.Label()),
		"",
		labelStyle.Render("Priority"),
		styles.Colored(v.cfg.PriorityColor(task.Priority)).Render(string(task.Priority)),
		"",
		labelStyle.Render("Category"),
		styles.Colored(v.cfg.CategoryColor(task.Category)).Render(string(task.Category)),
		"",
		labelStyle.Render("Due"),
		dueText,
		"",
		labelStyle.Render("Created"),
		task.CreatedDate.String(),
		"",
		labelStyle.Render("Hours"),
		fmt.Sprintf("estimated %d, actual %d", task.EstimatedHours, task.ActualHours),
		"",
		labelStyle.Render("Description"),
		lipgloss.NewStyle().Width(textWidth).Render(descText),
		"",
		labelStyle.Render("Subtasks"),
		v.renderSubTaskSummary(task),
		"",
		labelStyle.Render("Assigned"),
		v.renderAssignedSummary(task),
		"",
		labelStyle.Render("Assets"),
		v.renderAssetSummary(task),
		"",
		s.Help.Render(
			fmt.Sprintf("%s edit • %s subtasks • %s members • %s assets • %s dup • %s start • %s done • %s del • %s back",
				s.HelpKey.Render("e"),
				s.HelpKey.Render("t"),
				s.HelpKey.Render("m"),
				s.HelpKey.Render("r"),
				s.HelpKey.Render("u"),
				s.HelpKey.Render("o"),
				s.HelpKey.Render("x"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("esc"),
			),
		),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *TaskListView) renderSubTaskSummary(task model.Task) string {
	if len(task.SubTasks) == 0 {
		return v.styles.TitleMuted.Render("None")
	}
	var lines []string
	for _, st := range task.SubTasks {
		checkbox := "[ ]"
		if st.IsCompleted {
			checkbox = "[x]"
		}
		lines = append(lines, checkbox+" "+st.Title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *TaskListView) renderAssignedSummary(task model.Task) string {
	if len(task.AssignedMembers) == 0 {
		return v.styles.TitleMuted.Render("Nobody")
	}
	var parts []string
	for _, id := range task.AssignedMembers {
		if m, ok := v.repo.Member(id); ok {
			parts = append(parts, styles.Badge(m.Color).Render(m.Initials)+" "+m.Name)
		}
	}
	if len(parts) == 0 {
		return v.styles.TitleMuted.Render("Nobody")
	}
	return strings.Join(parts, "  ")
}

func (v *TaskListView) renderAssetSummary(task model.Task) string {
	if len(task.ReferencedAssetGUIDs) == 0 {
		return v.styles.TitleMuted.Render("None")
	}
	return lipgloss.JoinVertical(lipgloss.Left, task.ReferencedAssetGUIDs...)
}

func (v *TaskListView) renderSubTasks() string {
	task, ok := v.detailTask()
	if !ok {
		return ""
	}
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var items []string
	for i, st := range task.SubTasks {
		checkbox := "[ ]"
		if st.IsCompleted {
			checkbox = "[x]"
		}
		itemStyle := s.ListItem
		if i == v.subCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(checkbox+" "+st.Title))
	}
	if len(items) == 0 {
		items = append(items, s.TitleMuted.Render("No subtasks"))
	}

	rows := []string{
		s.Title.Render("Subtasks: " + task.Title),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
	}

	if v.addingSubTask {
		rows = append(rows, "", s.InputFocused.Width(clamp(contentWidth-10, 20, 50)).Render(v.subTaskInput.View()))
	}

	rows = append(rows, "", s.TitleMuted.Render("Space: toggle • n: add • d: remove • Esc: done"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderAssigning() string {
	task, ok := v.detailTask()
	if !ok {
		return ""
	}
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	members := v.repo.ActiveMembers()

	var items []string
	for i, m := range members {
		checkbox := "[ ]"
		if task.HasAssignedMember(m.ID) {
			checkbox = "[x]"
		}
		itemStyle := s.ListItem
		if i == v.assignCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(checkbox+" "+styles.Badge(m.Color).Render(m.Initials)+" "+m.Name))
	}
	if len(items) == 0 {
		items = append(items, s.TitleMuted.Render("No active members. Press M in the task list to add some."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Assign Members: "+task.Title),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
		"",
		s.TitleMuted.Render("Enter/Space: toggle • Esc: done"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderAssets() string {
	task, ok := v.detailTask()
	if !ok {
		return ""
	}
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var items []string
	for i, assetID := range task.ReferencedAssetGUIDs {
		itemStyle := s.ListItem
		if i == v.assetCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(assetID))
	}
	if len(items) == 0 {
		items = append(items, s.TitleMuted.Render("No asset references"))
	}

	rows := []string{
		s.Title.Render("Assets: " + task.Title),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
	}

	if v.addingAsset {
		rows = append(rows, "", s.InputFocused.Width(clamp(contentWidth-10, 20, 50)).Render(v.assetInput.View()))
	}

	rows = append(rows, "", s.TitleMuted.Render("n: add • d: remove • Esc: done"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(v.deleteTargetName),
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
