package store

import (
	"fmt"

	"github.com/rogersnm/tasklist/internal/model"
)

// Add trims text, assigns the next id and inserts the task at the front.
// Whitespace-only text is rejected with model.ErrEmptyText and consumes no id.
func (s *MemoryStore) Add(text string) (model.Task, error) {
	clean, err := model.CleanText(text)
	if err != nil {
		return model.Task{}, err
	}
	t := model.Task{
		ID:        s.seq.Next(),
		Text:      clean,
		CreatedAt: s.now(),
	}
	if err := t.Validate(); err != nil {
		return model.Task{}, fmt.Errorf("creating task: %w", err)
	}
	s.tasks = append([]model.Task{t}, s.tasks...)
	return t, nil
}

func (s *MemoryStore) SetCompleted(taskID int, completed bool) (model.Task, error) {
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Completed = completed
	return s.tasks[i], nil
}

func (s *MemoryStore) SetText(taskID int, text string) (model.Task, error) {
	clean, err := model.CleanText(text)
	if err != nil {
		return model.Task{}, err
	}
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Text = clean
	return s.tasks[i], nil
}

func (s *MemoryStore) Delete(taskID int) error {
	i := s.index(taskID)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return nil
}

// DeleteWhere removes every matching task in one pass and returns how many
// were removed. Remaining tasks keep their relative order.
func (s *MemoryStore) DeleteWhere(match func(model.Task) bool) int {
	kept := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed > 0 {
		s.tasks = kept
	}
	return removed
}
