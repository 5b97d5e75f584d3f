package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyText is returned when task text is empty after trimming.
var ErrEmptyText = errors.New("task text is required")

type Task struct {
	ID        int       `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Completed bool      `yaml:"completed" json:"completed"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// CleanText trims raw user input and rejects whitespace-only text.
func CleanText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
