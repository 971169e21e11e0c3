// Package config loads the panel's settings snapshot. The snapshot is
// read once at startup and treated as immutable; nothing in the
// application writes configuration back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"todopanel/internal/model"
)

// Config is the settings snapshot injected into the repository and the
// panel. Every field has a hardcoded fallback, so a missing or partial
// config file is always usable.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Behavior Behavior `toml:"behavior"`
	Colors   Colors   `toml:"colors"`
}

// Defaults supplies field values for newly created tasks and members.
type Defaults struct {
	Priority      string `toml:"priority"`
	Category      string `toml:"category"`
	Status        string `toml:"status"`
	EstimateHours int    `toml:"estimate_hours"`
	DueDays       int    `toml:"due_days"`
	MemberRole    string `toml:"member_role"`
}

// Behavior holds panel behavior toggles.
type Behavior struct {
	ShowCompleted  bool `toml:"show_completed"`
	DueWarningDays int  `toml:"due_warning_days"`
}

// Colors maps enum values to display colors. Missing entries fall back to
// the built-in palette.
type Colors struct {
	Priority map[string]string `toml:"priority"`
	Status   map[string]string `toml:"status"`
	Category map[string]string `toml:"category"`
}

// Default returns the built-in settings snapshot.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Priority:      string(model.PriorityMedium),
			Category:      string(model.CategoryGeneral),
			Status:        string(model.StatusNotStarted),
			EstimateHours: 2,
			DueDays:       7,
			MemberRole:    "Developer",
		},
		Behavior: Behavior{
			ShowCompleted:  true,
			DueWarningDays: 1,
		},
	}
}

// Load reads the config file at path, or the user config file when path is
// empty. A missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = userConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the default config file location, following XDG
// conventions.
func userConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "todopanel", "todopanel.toml")
}

// DefaultPriority returns the configured priority for new tasks, falling
// back to Medium when the value is not a storable priority.
func (c Config) DefaultPriority() model.Priority {
	p := model.Priority(c.Defaults.Priority)
	if p.Rank() == 0 {
		return model.PriorityMedium
	}
	return p
}

// DefaultCategory returns the configured category for new tasks.
func (c Config) DefaultCategory() model.Category {
	cat := model.Category(c.Defaults.Category)
	for _, known := range model.Categories {
		if cat == known {
			return cat
		}
	}
	return model.CategoryGeneral
}

// DefaultStatus returns the configured status for new tasks.
func (c Config) DefaultStatus() model.Status {
	s := model.Status(c.Defaults.Status)
	for _, known := range model.Statuses {
		if s == known {
			return s
		}
	}
	return model.StatusNotStarted
}

// DefaultDueDate returns the due date for a new task created today.
func (c Config) DefaultDueDate(today model.Date) model.Date {
	return today.AddDays(c.Defaults.DueDays)
}

// PriorityColor returns the display color for a priority.
func (c Config) PriorityColor(p model.Priority) string {
	if color, ok := c.Colors.Priority[string(p)]; ok {
		return color
	}
	switch p {
	case model.PriorityCritical:
		return "#800080"
	case model.PriorityHigh:
		return "#FF0000"
	case model.PriorityMedium:
		return "#FF8000"
	case model.PriorityLow:
		return "#00FF00"
	}
	return "#808080"
}

// StatusColor returns the display color for a status.
func (c Config) StatusColor(s model.Status) string {
	if color, ok := c.Colors.Status[string(s)]; ok {
		return color
	}
	switch s {
	case model.StatusInProgress:
		return "#3399FF"
	case model.StatusCompleted:
		return "#33CC33"
	case model.StatusOnHold:
		return "#FFCC33"
	case model.StatusBlocked:
		return "#FF4D4D"
	}
	return "#808080"
}

// CategoryColor returns the display color for a category.
func (c Config) CategoryColor(cat model.Category) string {
	if color, ok := c.Colors.Category[string(cat)]; ok {
		return color
	}
	switch cat {
	case model.CategoryProgramming:
		return "#3399FF"
	case model.CategoryArt:
		return "#CC33CC"
	case model.CategoryDesign:
		return "#00CCCC"
	case model.CategoryTesting:
		return "#33CC33"
	case model.CategoryDocumentation:
		return "#FFFFFF"
	case model.CategoryAudio:
		return "#CC66FF"
	case model.CategoryAnimation:
		return "#FF8000"
	case model.CategoryUI:
		return "#E5E533"
	}
	return "#808080"
}

// DueSoon reports whether a due date falls within the warning window: due
// today or within the next DueWarningDays days.
func (c Config) DueSoon(due, today model.Date) bool {
	if due.IsZero() {
		return false
	}
	days := today.DaysUntil(due)
	return days >= 0 && days <= c.Behavior.DueWarningDays
}
