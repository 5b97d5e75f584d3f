package id

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "#"

// Sequence hands out task ids. Ids start at 1 and are never reused, even
// after the task holding one is removed.
type Sequence struct {
	next int
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

func (s *Sequence) Next() int {
	if s.next < 1 {
		s.next = 1
	}
	n := s.next
	s.next++
	return n
}

// Peek returns the id the next call to Next will return.
func (s *Sequence) Peek() int {
	if s.next < 1 {
		return 1
	}
	return s.next
}

// Parse accepts "3" or "#3" and returns the numeric id.
func Parse(s string) (int, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), prefix)
	if raw == "" {
		return 0, fmt.Errorf("invalid id %q: missing number", s)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return n, nil
}

func Format(n int) string {
	return prefix + strconv.Itoa(n)
}
