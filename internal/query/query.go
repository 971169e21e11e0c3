// Package query computes the filtered, sorted task view. Everything here
// is a pure function of its inputs; the panel re-derives the view after
// every mutation.
package query

import (
	"sort"
	"strings"

	"todopanel/internal/model"
)

// AllMembers is the assigned-member filter wildcard.
const AllMembers = "All"

// Criteria is the current filter state. The zero value filters nothing
// except completed tasks; use Default for the panel's initial state.
type Criteria struct {
	Search         string
	Priority       model.Priority
	Category       model.Category
	Status         model.Status
	ShowCompleted  bool
	AssignedMember string
}

// Default returns criteria that match every task.
func Default() Criteria {
	return Criteria{
		Priority:       model.PriorityAll,
		Category:       model.CategoryAll,
		Status:         model.StatusAll,
		ShowCompleted:  true,
		AssignedMember: AllMembers,
	}
}

// Apply filters tasks by the conjunction of all criteria and orders the
// result by priority severity descending, then due date ascending with
// unset due dates last, with ties keeping input order.
func Apply(tasks []model.Task, c Criteria) []model.Task {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var out []model.Task
	for _, t := range tasks {
		if !c.ShowCompleted && t.Status == model.StatusCompleted {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if c.Priority != "" && c.Priority != model.PriorityAll && t.Priority != c.Priority {
			continue
		}
		if c.Category != "" && c.Category != model.CategoryAll && t.Category != c.Category {
			continue
		}
		if c.Status != "" && c.Status != model.StatusAll && t.Status != c.Status {
			continue
		}
		if c.AssignedMember != "" && c.AssignedMember != AllMembers && !t.HasAssignedMember(c.AssignedMember) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		}
		di, dj := out[i].DueDate, out[j].DueDate
		// Tasks without a due date sort after every dated task.
		if di.IsZero() != dj.IsZero() {
			return dj.IsZero()
		}
		return di.Before(dj)
	})

	return out
}

// Stats summarizes a task view for the panel's footer.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int
}

// Count tallies the stats line for the given tasks.
func Count(tasks []model.Task, today model.Date) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		}
		if t.IsOverdue(today) {
			s.Overdue++
		}
	}
	return s
}
