package store

import (
	"todopanel/internal/model"
)

// TaskFields carries the user-editable fields of a task. On AddTask,
// zero-valued enums, an unset due date, and a zero EstimatedHours all fall
// back to the configured defaults; an explicit zero-hour estimate is not
// representable at creation and must be set afterwards via EditTask, which
// applies its fields verbatim.
type TaskFields struct {
	Title          string
	Description    string
	DueDate        model.Date
	Priority       model.Priority
	Category       model.Category
	Status         model.Status
	EstimatedHours int
	ActualHours    int
}

// Mutations targeting an id that no longer exists are uniform silent
// no-ops: they return false and leave state untouched. See DESIGN.md.

// AddTask creates a task with a fresh id and today's created date, filling
// unset fields from the configured defaults, and appends it.
func (r *Repository) AddTask(fields TaskFields) model.Task {
	today := model.Today()

	task := model.Task{
		ID:             model.NewID(),
		Title:          fields.Title,
		Description:    fields.Description,
		DueDate:        fields.DueDate,
		CreatedDate:    today,
		Priority:       fields.Priority,
		Category:       fields.Category,
		Status:         fields.Status,
		EstimatedHours: fields.EstimatedHours,
		ActualHours:    fields.ActualHours,
	}
	if task.DueDate.IsZero() {
		task.DueDate = r.cfg.DefaultDueDate(today)
	}
	if task.Priority == "" {
		task.Priority = r.cfg.DefaultPriority()
	}
	if task.Category == "" {
		task.Category = r.cfg.DefaultCategory()
	}
	if task.Status == "" {
		task.Status = r.cfg.DefaultStatus()
	}
	if task.EstimatedHours == 0 {
		task.EstimatedHours = r.cfg.Defaults.EstimateHours
	}

	r.tasks = append(r.tasks, task)
	r.save()
	return task.Clone()
}

// EditTask replaces the task's mutable fields, preserving id, created
// date, subtasks, assignments, and asset references.
func (r *Repository) EditTask(id string, fields TaskFields) bool {
	i := r.taskIndex(id)
	if i < 0 {
		return false
	}

	t := &r.tasks[i]
	t.Title = fields.Title
	t.Description = fields.Description
	t.DueDate = fields.DueDate
	t.Priority = fields.Priority
	t.Category = fields.Category
	t.Status = fields.Status
	t.EstimatedHours = fields.EstimatedHours
	t.ActualHours = fields.ActualHours

	r.save()
	return true
}

// DeleteTask removes the task unconditionally. The caller is expected to
// confirm with the user first.
func (r *Repository) DeleteTask(id string) bool {
	i := r.taskIndex(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	r.save()
	return true
}

// DuplicateTask appends a copy of the task with a fresh id, a copy marker
// on the title, the due date pushed out a week, status reset, and all
// subtasks cloned uncompleted.
func (r *Repository) DuplicateTask(id string) (model.Task, bool) {
	i := r.taskIndex(id)
	if i < 0 {
		return model.Task{}, false
	}

	original := r.tasks[i]
	dup := original.Clone()
	dup.ID = model.NewID()
	dup.Title = original.Title + " (Copy)"
	dup.DueDate = original.DueDate.AddDays(7)
	dup.CreatedDate = model.Today()
	dup.Status = model.StatusNotStarted
	for j := range dup.SubTasks {
		dup.SubTasks[j].ID = model.NewID()
		dup.SubTasks[j].IsCompleted = false
	}

	r.tasks = append(r.tasks, dup)
	r.save()
	return dup.Clone(), true
}

// StartTask forces the task into InProgress. Sugar over EditTask's status
// write; no transition validation applies.
func (r *Repository) StartTask(id string) bool {
	return r.setStatus(id, model.StatusInProgress)
}

// CompleteTask forces the task into Completed.
func (r *Repository) CompleteTask(id string) bool {
	return r.setStatus(id, model.StatusCompleted)
}

func (r *Repository) setStatus(id string, status model.Status) bool {
	i := r.taskIndex(id)
	if i < 0 {
		return false
	}
	r.tasks[i].Status = status
	r.save()
	return true
}

// AddSubTask appends a new uncompleted subtask to the task.
func (r *Repository) AddSubTask(taskID, title string) bool {
	i := r.taskIndex(taskID)
	if i < 0 {
		return false
	}
	r.tasks[i].SubTasks = append(r.tasks[i].SubTasks, model.NewSubTask(title))
	r.save()
	return true
}

// RemoveSubTask removes the subtask with the given id. Subtasks are always
// addressed by id, never by position.
func (r *Repository) RemoveSubTask(taskID, subTaskID string) bool {
	i := r.taskIndex(taskID)
	if i < 0 {
		return false
	}
	subs := r.tasks[i].SubTasks
	for j := range subs {
		if subs[j].ID == subTaskID {
			r.tasks[i].SubTasks = append(subs[:j], subs[j+1:]...)
			r.save()
			return true
		}
	}
	return false
}

// SetSubTaskCompletion updates the subtask's completion flag in place.
func (r *Repository) SetSubTaskCompletion(taskID, subTaskID string, completed bool) bool {
	i := r.taskIndex(taskID)
	if i < 0 {
		return false
	}
	subs := r.tasks[i].SubTasks
	for j := range subs {
		if subs[j].ID == subTaskID {
			subs[j].IsCompleted = completed
			r.save()
			return true
		}
	}
	return false
}

// AssignMember adds the member to the task's assignment set. Assigning an
// already-assigned member is a no-op.
func (r *Repository) AssignMember(taskID, memberID string) bool {
	i := r.taskIndex(taskID)
	if i < 0 || r.tasks[i].HasAssignedMember(memberID) {
		return false
	}
	r.tasks[i].AssignedMembers = append(r.tasks[i].AssignedMembers, memberID)
	r.save()
	return true
}

// UnassignMember removes the member from the task's assignment set.
func (r *Repository) UnassignMember(taskID, memberID string) bool {
	i := r.taskIndex(taskID)
	if i < 0 {
		return false
	}
	if removed := removeString(&r.tasks[i].AssignedMembers, memberID); !removed {
		return false
	}
	r.save()
	return true
}

// AddAssetReference adds the asset id to the task's reference set. Adding
// an already-present reference is a no-op; existing order is preserved.
func (r *Repository) AddAssetReference(taskID, assetID string) bool {
	i := r.taskIndex(taskID)
	if i < 0 || r.tasks[i].HasAssetReference(assetID) {
		return false
	}
	r.tasks[i].ReferencedAssetGUIDs = append(r.tasks[i].ReferencedAssetGUIDs, assetID)
	r.save()
	return true
}

// RemoveAssetReference removes the asset id from the task's reference set.
func (r *Repository) RemoveAssetReference(taskID, assetID string) bool {
	i := r.taskIndex(taskID)
	if i < 0 {
		return false
	}
	if removed := removeString(&r.tasks[i].ReferencedAssetGUIDs, assetID); !removed {
		return false
	}
	r.save()
	return true
}

// AddTeamMember creates a member with a generated id, color, and initials,
// and appends it. An empty role falls back to the configured default.
func (r *Repository) AddTeamMember(name, role string) model.TeamMember {
	if role == "" {
		role = r.cfg.Defaults.MemberRole
	}
	member := model.NewTeamMember(name, role)
	r.members = append(r.members, member)
	r.save()
	return member
}

// SetMemberActive toggles a member's active flag. Deactivation keeps the
// member's existing assignments on tasks; only deletion cascades.
func (r *Repository) SetMemberActive(memberID string, active bool) bool {
	i := r.memberIndex(memberID)
	if i < 0 {
		return false
	}
	r.members[i].IsActive = active
	r.save()
	return true
}

// DeleteTeamMember removes the member and sweeps the member id out of
// every task's assignment set and every subtask's assignment set. The full
// scan is intentional: deletion must leave no dangling references, and the
// collections are small.
func (r *Repository) DeleteTeamMember(memberID string) bool {
	i := r.memberIndex(memberID)
	if i < 0 {
		return false
	}
	r.members = append(r.members[:i], r.members[i+1:]...)

	for ti := range r.tasks {
		removeString(&r.tasks[ti].AssignedMembers, memberID)
		for si := range r.tasks[ti].SubTasks {
			removeString(&r.tasks[ti].SubTasks[si].AssignedTo, memberID)
		}
	}

	r.save()
	return true
}

// removeString removes the first occurrence of s from the list, reporting
// whether anything was removed.
func removeString(list *[]string, s string) bool {
	for i, v := range *list {
		if v == s {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
