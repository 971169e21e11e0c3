// Package store owns the task and team member collections and their
// persistence. The repository is the single source of truth: the query
// engine and the panel read from it, mutations go through it, and every
// completed mutation is written back to the preference store before
// control returns.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"todopanel/internal/config"
	"todopanel/internal/model"
)

// Fixed preference-store keys for the two persisted blobs.
const (
	taskDataKey   = "todo.tasks"
	memberDataKey = "todo.members"
)

// schemaVersion tags persisted blobs so a future format change loads
// fail-soft instead of silently misreading old data.
const schemaVersion = 1

type taskBlob struct {
	SchemaVersion int          `json:"schema_version"`
	Tasks         []model.Task `json:"tasks"`
}

type memberBlob struct {
	SchemaVersion int                `json:"schema_version"`
	Members       []model.TeamMember `json:"members"`
}

// Repository holds the in-memory task and member collections. It is
// constructed explicitly and passed by reference; there is no ambient
// singleton. All access is single-threaded.
type Repository struct {
	prefs   *Prefs
	cfg     config.Config
	log     *log.Logger
	tasks   []model.Task
	members []model.TeamMember
	batch   bool
}

// NewRepository loads both collections from the preference store. Loading
// never fails observably: malformed or version-mismatched blobs reset the
// affected collection to empty, with the failure logged.
func NewRepository(prefs *Prefs, cfg config.Config, logger *log.Logger) *Repository {
	r := &Repository{prefs: prefs, cfg: cfg, log: logger}
	r.loadTasks()
	r.loadMembers()
	return r
}

func (r *Repository) loadTasks() {
	r.tasks = nil

	data, err := r.prefs.Get(taskDataKey)
	if err != nil {
		r.log.Warn("could not read task data, starting empty", "err", err)
		return
	}
	if data == "" {
		return
	}

	var blob taskBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		r.log.Warn("malformed task data, starting empty", "err", err)
		return
	}
	if blob.SchemaVersion != schemaVersion {
		r.log.Warn("unknown task data version, starting empty", "version", blob.SchemaVersion)
		return
	}
	r.tasks = blob.Tasks
}

func (r *Repository) loadMembers() {
	r.members = nil

	data, err := r.prefs.Get(memberDataKey)
	if err != nil {
		r.log.Warn("could not read member data, starting empty", "err", err)
		return
	}
	if data == "" {
		return
	}

	var blob memberBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		r.log.Warn("malformed member data, starting empty", "err", err)
		return
	}
	if blob.SchemaVersion != schemaVersion {
		r.log.Warn("unknown member data version, starting empty", "version", blob.SchemaVersion)
		return
	}
	r.members = blob.Members
}

// save serializes the full state and writes it back. Write failures are
// logged rather than propagated; the in-memory state stays authoritative.
func (r *Repository) save() {
	if r.batch {
		return
	}
	if err := r.write(); err != nil {
		r.log.Error("could not persist state", "err", err)
	}
}

func (r *Repository) write() error {
	taskData, err := json.Marshal(taskBlob{SchemaVersion: schemaVersion, Tasks: r.tasks})
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	if err := r.prefs.Set(taskDataKey, string(taskData)); err != nil {
		return fmt.Errorf("writing tasks: %w", err)
	}

	memberData, err := json.Marshal(memberBlob{SchemaVersion: schemaVersion, Members: r.members})
	if err != nil {
		return fmt.Errorf("encoding members: %w", err)
	}
	if err := r.prefs.Set(memberDataKey, string(memberData)); err != nil {
		return fmt.Errorf("writing members: %w", err)
	}
	return nil
}

// Batch runs fn with persistence deferred, then writes once. Reads inside
// fn still see every mutation immediately; only the write is grouped. The
// final write happens even if fn panics, so a recovered panic cannot leave
// persistence suppressed.
func (r *Repository) Batch(fn func()) {
	r.batch = true
	defer func() {
		r.batch = false
		r.save()
	}()
	fn()
}

// Config returns the injected settings snapshot.
func (r *Repository) Config() config.Config {
	return r.cfg
}

// Tasks returns a deep copy of the task collection in insertion order.
func (r *Repository) Tasks() []model.Task {
	out := make([]model.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task returns a copy of the task with the given id.
func (r *Repository) Task(id string) (model.Task, bool) {
	if i := r.taskIndex(id); i >= 0 {
		return r.tasks[i].Clone(), true
	}
	return model.Task{}, false
}

// Members returns a copy of the member collection in insertion order.
func (r *Repository) Members() []model.TeamMember {
	out := make([]model.TeamMember, len(r.members))
	copy(out, r.members)
	return out
}

// Member returns the member with the given id.
func (r *Repository) Member(id string) (model.TeamMember, bool) {
	if i := r.memberIndex(id); i >= 0 {
		return r.members[i], true
	}
	return model.TeamMember{}, false
}

// ActiveMembers returns the members eligible for assignment.
func (r *Repository) ActiveMembers() []model.TeamMember {
	var out []model.TeamMember
	for _, m := range r.members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

func (r *Repository) taskIndex(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) memberIndex(id string) int {
	for i := range r.members {
		if r.members[i].ID == id {
			return i
		}
	}
	return -1
}
