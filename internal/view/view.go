// Package view derives what the user sees from session state. Nothing here
// mutates the session.
package view

import (
	"time"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/notify"
)

// Source is the read-only query surface a view is built from.
type Source interface {
	VisibleTasks() []model.Task
	Counts() model.Counts
	Filter() model.Filter
	EditingTarget() (model.Task, bool)
	Removing(taskID int) bool
}

type Row struct {
	ID        int       `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Completed bool      `yaml:"completed" json:"completed"`
	Removing  bool      `yaml:"removing,omitempty" json:"removing,omitempty"`
	Editing   bool      `yaml:"editing,omitempty" json:"editing,omitempty"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

type View struct {
	Filter model.Filter   `yaml:"filter" json:"filter"`
	Rows   []Row          `yaml:"tasks" json:"tasks"`
	Counts model.Counts   `yaml:"counts" json:"counts"`
	Notice *notify.Notice `yaml:"-" json:"-"`
}

// Build derives a View from src. board may be nil.
func Build(src Source, board *notify.Board) View {
	editing, isEditing := src.EditingTarget()
	tasks := src.VisibleTasks()
	v := View{
		Filter: src.Filter(),
		Rows:   make([]Row, len(tasks)),
		Counts: src.Counts(),
	}
	for i, t := range tasks {
		v.Rows[i] = Row{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Removing:  src.Removing(t.ID),
			Editing:   isEditing && editing.ID == t.ID,
			CreatedAt: t.CreatedAt,
		}
	}
	if board != nil {
		if n, ok := board.Current(); ok {
			v.Notice = &n
		}
	}
	return v
}

// Tasks converts the visible rows back to model tasks.
func (v View) Tasks() []model.Task {
	out := make([]model.Task, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = model.Task{ID: r.ID, Text: r.Text, Completed: r.Completed, CreatedAt: r.CreatedAt}
	}
	return out
}

// EmptyTitle is the heading shown when no rows are visible.
func (v View) EmptyTitle() string {
	if v.Filter == model.FilterAll || v.Filter == "" {
		return "No tasks"
	}
	return "No tasks " + string(v.Filter)
}

const emptyHint = "Add a new task to get started!"
