package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todopanel/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Defaults.Priority != string(model.PriorityMedium) {
		t.Errorf("missing file should yield defaults, got priority %q", cfg.Defaults.Priority)
	}
	if cfg.Defaults.DueDays != 7 {
		t.Errorf("DueDays: got %d, want 7", cfg.Defaults.DueDays)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todopanel.toml")
	content := `
[defaults]
priority = "High"
estimate_hours = 6
due_days = 14

[behavior]
due_warning_days = 3

[colors.priority]
High = "#ABCDEF"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultPriority() != model.PriorityHigh {
		t.Errorf("DefaultPriority: got %v, want High", cfg.DefaultPriority())
	}
	if cfg.Defaults.EstimateHours != 6 {
		t.Errorf("EstimateHours: got %d, want 6", cfg.Defaults.EstimateHours)
	}
	if cfg.Behavior.DueWarningDays != 3 {
		t.Errorf("DueWarningDays: got %d, want 3", cfg.Behavior.DueWarningDays)
	}
	if got := cfg.PriorityColor(model.PriorityHigh); got != "#ABCDEF" {
		t.Errorf("PriorityColor override: got %q, want #ABCDEF", got)
	}
	// Unset entries still use the built-in palette.
	if got := cfg.PriorityColor(model.PriorityLow); got != "#00FF00" {
		t.Errorf("PriorityColor fallback: got %q, want #00FF00", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("defaults = ["), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config should be an error, not a silent default")
	}
}

func TestInvalidDefaultsFallBack(t *testing.T) {
	cfg := Default()
	cfg.Defaults.Priority = "Impossible"
	cfg.Defaults.Category = "Nonsense"
	cfg.Defaults.Status = "All"

	if got := cfg.DefaultPriority(); got != model.PriorityMedium {
		t.Errorf("DefaultPriority: got %v, want Medium", got)
	}
	if got := cfg.DefaultCategory(); got != model.CategoryGeneral {
		t.Errorf("DefaultCategory: got %v, want General", got)
	}
	if got := cfg.DefaultStatus(); got != model.StatusNotStarted {
		t.Errorf("DefaultStatus: got %v, want NotStarted", got)
	}
}

func TestDueSoon(t *testing.T) {
	cfg := Default()
	today := model.NewDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		due  model.Date
		want bool
	}{
		{"due today", today, true},
		{"due tomorrow", today.AddDays(1), true},
		{"due in two days", today.AddDays(2), false},
		{"past due", today.AddDays(-1), false},
		{"unset", model.Date{}, false},
	}

	for _, tt := range tests {
		if got := cfg.DueSoon(tt.due, today); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultDueDate(t *testing.T) {
	cfg := Default()
	today := model.NewDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	if got := cfg.DefaultDueDate(today).String(); got != "2026-06-08" {
		t.Errorf("DefaultDueDate: got %q, want 2026-06-08", got)
	}
}
