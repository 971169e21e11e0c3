package query

import (
	"testing"
	"time"

	"todopanel/internal/model"
)

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func taskTitles(tasks []model.Task) []string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}

func TestApplySortsByPriorityThenDueDate(t *testing.T) {
	tasks := []model.Task{
		{Title: "low early", Priority: model.PriorityLow, DueDate: date("2026-01-01")},
		{Title: "critical late", Priority: model.PriorityCritical, DueDate: date("2026-12-31")},
		{Title: "medium late", Priority: model.PriorityMedium, DueDate: date("2026-06-15")},
		{Title: "medium early", Priority: model.PriorityMedium, DueDate: date("2026-02-01")},
		{Title: "high", Priority: model.PriorityHigh, DueDate: date("2026-03-01")},
	}

	got := taskTitles(Apply(tasks, Default()))
	want := []string{"critical late", "high", "medium early", "medium late", "low early"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestApplyUnsetDueDateSortsLast(t *testing.T) {
	tasks := []model.Task{
		{Title: "no due", Priority: model.PriorityMedium},
		{Title: "dated", Priority: model.PriorityMedium, DueDate: date("2026-12-31")},
		{Title: "higher no due", Priority: model.PriorityHigh},
	}

	got := taskTitles(Apply(tasks, Default()))
	want := []string{"higher no due", "dated", "no due"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestApplyStableForEqualKeys(t *testing.T) {
	due := date("2026-05-01")
	tasks := []model.Task{
		{Title: "first", Priority: model.PriorityMedium, DueDate: due},
		{Title: "second", Priority: model.PriorityMedium, DueDate: due},
		{Title: "third", Priority: model.PriorityMedium, DueDate: due},
	}

	got := taskTitles(Apply(tasks, Default()))
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal keys should keep input order: got %v", got)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", Priority: model.PriorityLow},
		{Title: "a", Priority: model.PriorityCritical},
	}

	Apply(tasks, Default())

	if tasks[0].Title != "b" || tasks[1].Title != "a" {
		t.Error("Apply reordered its input slice")
	}
}

func TestApplyFilters(t *testing.T) {
	tasks := []model.Task{
		{Title: "Fix collision mesh", Description: "player clips through walls", Priority: model.PriorityHigh, Category: model.CategoryProgramming, Status: model.StatusInProgress, AssignedMembers: []string{"m1"}},
		{Title: "Design boss arena", Priority: model.PriorityMedium, Category: model.CategoryDesign, Status: model.StatusNotStarted},
		{Title: "Polish menu art", Priority: model.PriorityLow, Category: model.CategoryArt, Status: model.StatusCompleted, AssignedMembers: []string{"m2"}},
	}

	tests := []struct {
		name     string
		criteria func(Criteria) Criteria
		want     []string
	}{
		{
			"search matches title",
			func(c Criteria) Criteria { c.Search = "collision"; return c },
			[]string{"Fix collision mesh"},
		},
		{
			"search matches description",
			func(c Criteria) Criteria { c.Search = "CLIPS"; return c },
			[]string{"Fix collision mesh"},
		},
		{
			"priority filter",
			func(c Criteria) Criteria { c.Priority = model.PriorityMedium; return c },
			[]string{"Design boss arena"},
		},
		{
			"category filter",
			func(c Criteria) Criteria { c.Category = model.CategoryArt; return c },
			[]string{"Polish menu art"},
		},
		{
			"status filter",
			func(c Criteria) Criteria { c.Status = model.StatusInProgress; return c },
			[]string{"Fix collision mesh"},
		},
		{
			"hide completed",
			func(c Criteria) Criteria { c.ShowCompleted = false; return c },
			[]string{"Fix collision mesh", "Design boss arena"},
		},
		{
			"member filter",
			func(c Criteria) Criteria { c.AssignedMember = "m2"; return c },
			[]string{"Polish menu art"},
		},
		{
			"filters are conjunctive",
			func(c Criteria) Criteria {
				c.Search = "mesh"
				c.Priority = model.PriorityLow
				return c
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskTitles(Apply(tasks, tt.criteria(Default())))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestZeroCriteriaMatchesAll(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", Status: model.StatusNotStarted},
		{Title: "b", Status: model.StatusInProgress},
	}

	var c Criteria
	c.ShowCompleted = true
	if got := len(Apply(tasks, c)); got != 2 {
		t.Errorf("zero-value filters should be wildcards: got %d tasks, want 2", got)
	}
}

func TestCount(t *testing.T) {
	today := model.NewDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{Status: model.StatusCompleted, DueDate: today.AddDays(-3)},
		{Status: model.StatusInProgress, DueDate: today.AddDays(-1)},
		{Status: model.StatusInProgress, DueDate: today.AddDays(5)},
		{Status: model.StatusNotStarted},
	}

	got := Count(tasks, today)
	want := Stats{Total: 4, Completed: 1, InProgress: 2, Overdue: 1}
	if got != want {
		t.Errorf("Count: got %+v, want %+v", got, want)
	}
}
