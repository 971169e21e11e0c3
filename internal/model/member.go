package model

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// memberColors is the fixed palette a new member's display color is picked
// from.
var memberColors = []string{
	"#3399FF", // blue
	"#CC3333", // red
	"#33CC33", // green
	"#CC9933", // orange
	"#9933CC", // purple
	"#33CCCC", // cyan
	"#CC33CC", // magenta
}

// TeamMember is a named collaborator who can be assigned to tasks and
// subtasks. Deactivating a member hides them from assignment lists but
// keeps existing assignments; only deletion cascades.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Color    string `json:"color"`
	Initials string `json:"initials"`
	IsActive bool   `json:"is_active"`
}

// NewTeamMember creates a member with a generated id, a color from the
// fixed palette, and initials derived from the name.
func NewTeamMember(name, role string) TeamMember {
	return TeamMember{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     role,
		Color:    memberColors[rand.IntN(len(memberColors))],
		Initials: Initials(name),
		IsActive: true,
	}
}

// Initials derives a two-character badge from a name: the first letters of
// the first and last words, or the first two characters of a single word.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "??"
	}
	parts := strings.Fields(name)
	if len(parts) == 1 {
		word := []rune(parts[0])
		if len(word) >= 2 {
			return strings.ToUpper(string(word[:2]))
		}
		return strings.ToUpper(string(word))
	}
	first := []rune(parts[0])
	last := []rune(parts[len(parts)-1])
	return strings.ToUpper(string(first[0]) + string(last[0]))
}
