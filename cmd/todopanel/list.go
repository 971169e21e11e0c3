package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"todopanel/internal/model"
	"todopanel/internal/query"
	"todopanel/internal/store"
)

// printTaskTable renders the full task list to stdout, sorted the same
// way the interactive view sorts it.
func printTaskTable(repo *store.Repository) {
	criteria := query.Default()
	criteria.ShowCompleted = true
	tasks := query.Apply(repo.Tasks(), criteria)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Title", "Priority", "Category", "Status", "Due", "Subtasks", "Assigned"})

	for _, task := range tasks {
		due := ""
		if !task.DueDate.IsZero() {
			due = task.DueDate.String()
		}

		progress := ""
		if done, total := task.SubTaskProgress(); total > 0 {
			progress = fmt.Sprintf("%d/%d", done, total)
		}

		assigned := ""
		for _, id := range task.AssignedMembers {
			if m, ok := repo.Member(id); ok {
				if assigned != "" {
					assigned += ", "
				}
				assigned += m.Name
			}
		}

		t.AppendRow(table.Row{
			task.Title,
			string(task.Priority),
			string(task.Category),
			task.Status.Label(),
			due,
			progress,
			assigned,
		})
	}

	stats := query.Count(tasks, model.Today())
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d tasks", stats.Total), "", "",
		fmt.Sprintf("%d done", stats.Completed),
		fmt.Sprintf("%d overdue", stats.Overdue), "", "",
	})

	t.SetStyle(table.StyleRounded)
	t.Render()
}
