package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"Ada", "AD"},
		{"ada lovelace", "AL"},
		{"Grace Brewster Murray Hopper", "GH"},
		{"X", "X"},
		{"", "??"},
		{"   ", "??"},
	}

	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewTeamMember(t *testing.T) {
	m := NewTeamMember("Ada Lovelace", "Developer")

	if m.ID == "" {
		t.Error("expected a generated ID")
	}
	if m.Initials != "AL" {
		t.Errorf("Initials: got %q, want AL", m.Initials)
	}
	if !m.IsActive {
		t.Error("new members should be active")
	}

	found := false
	for _, c := range memberColors {
		if c == m.Color {
			found = true
		}
	}
	if !found {
		t.Errorf("Color %q is not from the palette", m.Color)
	}
}

func TestDateTruncation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	d := NewDate(time.Date(2026, 3, 15, 23, 45, 12, 0, loc))

	if got := d.String(); got != "2026-03-15" {
		t.Errorf("String: got %q, want 2026-03-15", got)
	}
	if !NewDate(d.Time()).Equal(d) {
		t.Error("truncation should be idempotent")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-01-02"` {
		t.Errorf("Marshal: got %s, want \"2026-01-02\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip: got %v, want %v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("Unmarshal empty failed: %v", err)
	}
	if !zero.IsZero() {
		t.Error("empty string should decode to the zero date")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC))

	if got := d.AddDays(7).String(); got != "2026-03-05" {
		t.Errorf("AddDays(7): got %q, want 2026-03-05", got)
	}
	if got := d.DaysUntil(d.AddDays(3)); got != 3 {
		t.Errorf("DaysUntil: got %d, want 3", got)
	}
}

func TestTaskClone(t *testing.T) {
	task := Task{
		ID:                   NewID(),
		Title:                "Fix collision mesh",
		SubTasks:             []SubTask{NewSubTask("Re-export model")},
		AssignedMembers:      []string{"m1"},
		ReferencedAssetGUIDs: []string{"guid-1"},
	}

	clone := task.Clone()
	clone.SubTasks[0].Title = "changed"
	clone.AssignedMembers[0] = "m2"
	clone.ReferencedAssetGUIDs[0] = "guid-2"

	if task.SubTasks[0].Title != "Re-export model" {
		t.Error("clone shares the subtask slice")
	}
	if task.AssignedMembers[0] != "m1" {
		t.Error("clone shares the member slice")
	}
	if task.ReferencedAssetGUIDs[0] != "guid-1" {
		t.Error("clone shares the asset slice")
	}
}

func TestSubTaskProgress(t *testing.T) {
	task := Task{
		SubTasks: []SubTask{
			{Title: "a", IsCompleted: true},
			{Title: "b"},
			{Title: "c", IsCompleted: true},
		},
	}

	done, total := task.SubTaskProgress()
	if done != 2 || total != 3 {
		t.Errorf("SubTaskProgress: got %d/%d, want 2/3", done, total)
	}
}

func TestIsOverdue(t *testing.T) {
	today := NewDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"due yesterday", Task{DueDate: today.AddDays(-1), Status: StatusInProgress}, true},
		{"due today", Task{DueDate: today, Status: StatusInProgress}, false},
		{"due tomorrow", Task{DueDate: today.AddDays(1), Status: StatusInProgress}, false},
		{"completed past due", Task{DueDate: today.AddDays(-5), Status: StatusCompleted}, false},
		{"no due date", Task{Status: StatusInProgress}, false},
	}

	for _, tt := range tests {
		if got := tt.task.IsOverdue(today); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityCritical.Rank() <= PriorityHigh.Rank() {
		t.Error("Critical should outrank High")
	}
	if PriorityHigh.Rank() <= PriorityMedium.Rank() {
		t.Error("High should outrank Medium")
	}
	if PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Error("Medium should outrank Low")
	}
	if Priority("bogus").Rank() != 0 {
		t.Error("unknown priorities rank lowest")
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusNotStarted, "Not Started"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{StatusOnHold, "On Hold"},
		{StatusBlocked, "Blocked"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Label(%s): got %q, want %q", tt.status, got, tt.want)
		}
	}
}
