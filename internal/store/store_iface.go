package store

import "github.com/rogersnm/tasklist/internal/model"

// Store defines the task list storage operations. MemoryStore implements it
// for the single in-process session list.
type Store interface {
	// Reads
	List() []model.Task
	Get(taskID int) (model.Task, error)
	Len() int

	// Writes
	Add(text string) (model.Task, error)
	SetCompleted(taskID int, completed bool) (model.Task, error)
	SetText(taskID int, text string) (model.Task, error)
	Delete(taskID int) error
	DeleteWhere(match func(model.Task) bool) int
}
