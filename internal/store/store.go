package store

import (
	"errors"
	"time"

	"github.com/rogersnm/tasklist/internal/id"
	"github.com/rogersnm/tasklist/internal/model"
)

// ErrNotFound is returned for ids that match no task.
var ErrNotFound = errors.New("task not found")

// MemoryStore implements Store as an ordered slice, newest task first.
type MemoryStore struct {
	tasks []model.Task
	seq   *id.Sequence
	now   func() time.Time
}

// compile-time check
var _ Store = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{seq: id.NewSequence(), now: now}
}

// WithClock replaces the creation timestamp source. Intended for tests.
func (s *MemoryStore) WithClock(clock func() time.Time) *MemoryStore {
	s.now = clock
	return s
}

func (s *MemoryStore) Len() int {
	return len(s.tasks)
}

// List returns a copy of every task in store order.
func (s *MemoryStore) List() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *MemoryStore) Get(taskID int) (model.Task, error) {
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

func (s *MemoryStore) index(taskID int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
