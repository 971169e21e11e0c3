package model

// Priority ranks how urgent a task is. PriorityAll is a filter wildcard and
// is never stored on a task.
type Priority string

const (
	PriorityAll      Priority = "All"
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists the storable priorities in ascending severity.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Rank returns the severity rank used for sorting (Critical highest).
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	}
	return 0
}

// Category groups tasks by discipline. CategoryAll is a filter wildcard.
type Category string

const (
	CategoryAll           Category = "All"
	CategoryGeneral       Category = "General"
	CategoryProgramming   Category = "Programming"
	CategoryArt           Category = "Art"
	CategoryDesign        Category = "Design"
	CategoryTesting       Category = "Testing"
	CategoryDocumentation Category = "Documentation"
	CategoryAudio         Category = "Audio"
	CategoryAnimation     Category = "Animation"
	CategoryUI            Category = "UI"
)

// Categories lists the storable categories.
var Categories = []Category{
	CategoryGeneral,
	CategoryProgramming,
	CategoryArt,
	CategoryDesign,
	CategoryTesting,
	CategoryDocumentation,
	CategoryAudio,
	CategoryAnimation,
	CategoryUI,
}

// Status tracks where a task is in its lifecycle. StatusAll is a filter
// wildcard. No transition graph is enforced; any status may be assigned
// directly.
type Status string

const (
	StatusAll        Status = "All"
	StatusNotStarted Status = "NotStarted"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "OnHold"
	StatusBlocked    Status = "Blocked"
)

// Statuses lists the storable statuses.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold, StatusBlocked}

// Label returns the human-readable form shown in the panel.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusOnHold:
		return "On Hold"
	}
	return string(s)
}

// Glyph returns the one-character status indicator.
func (s Status) Glyph() string {
	switch s {
	case StatusInProgress:
		return "▶"
	case StatusCompleted:
		return "✓"
	case StatusOnHold:
		return "⏸"
	case StatusBlocked:
		return "⛔"
	}
	return "○"
}
