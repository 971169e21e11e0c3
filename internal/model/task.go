package model

import "github.com/google/uuid"

// Task is a unit of trackable work. ID and CreatedDate are stamped at
// creation and never change afterward.
type Task struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description,omitempty"`
	DueDate              Date      `json:"due_date"`
	CreatedDate          Date      `json:"created_date"`
	Priority             Priority  `json:"priority"`
	Category             Category  `json:"category"`
	Status               Status    `json:"status"`
	EstimatedHours       int       `json:"estimated_hours"`
	ActualHours          int       `json:"actual_hours"`
	SubTasks             []SubTask `json:"sub_tasks,omitempty"`
	AssignedMembers      []string  `json:"assigned_members,omitempty"`
	ReferencedAssetGUIDs []string  `json:"referenced_asset_guids,omitempty"`
}

// SubTask is a checklist item owned by its parent task. It has its own
// generated id so removal and completion toggles never address it by
// position in the slice.
type SubTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	IsCompleted bool     `json:"is_completed"`
	AssignedTo  []string `json:"assigned_to,omitempty"`
	AssetGUIDs  []string `json:"asset_guids,omitempty"`
}

// NewSubTask creates an uncompleted subtask with a fresh id.
func NewSubTask(title string) SubTask {
	return SubTask{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// NewID generates an opaque unique identifier.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	if t.SubTasks != nil {
		c.SubTasks = make([]SubTask, len(t.SubTasks))
		for i, st := range t.SubTasks {
			c.SubTasks[i] = st.Clone()
		}
	}
	c.AssignedMembers = cloneStrings(t.AssignedMembers)
	c.ReferencedAssetGUIDs = cloneStrings(t.ReferencedAssetGUIDs)
	return c
}

// Clone returns a deep copy of the subtask.
func (st SubTask) Clone() SubTask {
	c := st
	c.AssignedTo = cloneStrings(st.AssignedTo)
	c.AssetGUIDs = cloneStrings(st.AssetGUIDs)
	return c
}

// HasAssignedMember reports whether the member id is assigned to the task.
func (t Task) HasAssignedMember(memberID string) bool {
	return containsString(t.AssignedMembers, memberID)
}

// HasAssetReference reports whether the asset id is referenced by the task.
func (t Task) HasAssetReference(assetID string) bool {
	return containsString(t.ReferencedAssetGUIDs, assetID)
}

// SubTaskProgress returns how many subtasks are completed and how many
// exist in total.
func (t Task) SubTaskProgress() (done, total int) {
	for _, st := range t.SubTasks {
		if st.IsCompleted {
			done++
		}
	}
	return done, len(t.SubTasks)
}

// IsOverdue reports whether the task's due date has passed without the task
// being completed.
func (t Task) IsOverdue(today Date) bool {
	if t.DueDate.IsZero() || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(today)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}
	c := make([]string, len(list))
	copy(c, list)
	return c
}
