package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todopanel/internal/model"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestWriteCSV(t *testing.T) {
	tasks := []model.Task{
		{
			Title:          "Fix collision mesh",
			Description:    "player clips through walls",
			Priority:       model.PriorityHigh,
			Category:       model.CategoryProgramming,
			Status:         model.StatusInProgress,
			DueDate:        date(t, "2026-09-15"),
			CreatedDate:    date(t, "2026-08-30"),
			EstimatedHours: 4,
			ActualHours:    2,
		},
		{
			Title:       `Rename "Player" prefab`,
			Description: "",
			Priority:    model.PriorityLow,
			Category:    model.CategoryGeneral,
			Status:      model.StatusNotStarted,
			DueDate:     date(t, "2026-10-01"),
			CreatedDate: date(t, "2026-08-30"),
		},
	}

	var b strings.Builder
	if err := WriteCSV(&b, tasks); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Title,Description,Priority,Category,Status,Due Date,Created Date,Estimated Hours,Actual Hours\n" +
		`"Fix collision mesh","player clips through walls",High,Programming,InProgress,2026-09-15,2026-08-30,4,2` + "\n" +
		`"Rename ""Player"" prefab","",Low,General,NotStarted,2026-10-01,2026-08-30,0,0` + "\n"

	if got := b.String(); got != want {
		t.Errorf("WriteCSV:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Title,Description,Priority,Category,Status,Due Date,Created Date,Estimated Hours,Actual Hours\n"
	if got := b.String(); got != want {
		t.Errorf("empty export should be header only, got:\n%s", got)
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")

	tasks := []model.Task{{
		Title:       "Export me",
		Priority:    model.PriorityMedium,
		Category:    model.CategoryGeneral,
		Status:      model.StatusNotStarted,
		CreatedDate: date(t, "2026-08-30"),
	}}

	if err := WriteCSVFile(path, tasks); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), `"Export me"`) {
		t.Errorf("export file missing task row:\n%s", data)
	}
}
