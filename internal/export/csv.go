// Package export writes the task list in the panel's fixed CSV format.
//
// The format is an external contract: Title and Description are always
// double-quoted (inner quotes doubled), the remaining columns never are,
// and dates use yyyy-MM-dd. encoding/csv is not used because it quotes
// only when necessary and cannot reproduce this layout byte for byte.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todopanel/internal/model"
)

const csvHeader = "Title,Description,Priority,Category,Status,Due Date,Created Date,Estimated Hours,Actual Hours"

// WriteCSV writes one row per task, in the order given.
func WriteCSV(w io.Writer, tasks []model.Task) error {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, t := range tasks {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,%d,%d\n",
			quote(t.Title),
			quote(t.Description),
			t.Priority,
			t.Category,
			t.Status,
			t.DueDate,
			t.CreatedDate,
			t.EstimatedHours,
			t.ActualHours,
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSVFile writes the task list to path.
func WriteCSVFile(path string, tasks []model.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, tasks); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
