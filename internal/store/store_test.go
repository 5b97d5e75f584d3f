package store

import (
	"testing"
	"time"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	return NewMemory().WithClock(func() time.Time { return fixedTime })
}

func TestAdd_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Add("Buy milk")
	require.NoError(t, err)
	b, err := s.Add("Walk dog")
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "Walk dog", got[0].Text)
	assert.Equal(t, "Buy milk", got[1].Text)
}

func TestAdd_Fields(t *testing.T) {
	s := newTestStore(t)
	task, err := s.Add("  Call mom  ")
	require.NoError(t, err)
	assert.Equal(t, "Call mom", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, fixedTime, task.CreatedAt)
}

func TestAdd_EmptyText(t *testing.T) {
	s := newTestStore(t)
	for _, raw := range []string{"", "   "} {
		_, err := s.Add(raw)
		assert.ErrorIs(t, err, model.ErrEmptyText)
	}
	assert.Equal(t, 0, s.Len())

	// rejected adds do not consume ids
	task, err := s.Add("first")
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
}

func TestList_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add("a")
	require.NoError(t, err)

	list := s.List()
	list[0].Text = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Text)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetCompleted(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.Add("a")

	got, err := s.SetCompleted(task.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	_, err = s.SetCompleted(99, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetText(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.Add("a")

	got, err := s.SetText(task.ID, " b ")
	require.NoError(t, err)
	assert.Equal(t, "b", got.Text)
	assert.Equal(t, task.CreatedAt, got.CreatedAt)
}

func TestSetText_Empty(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.Add("a")

	_, err := s.SetText(task.ID, "  ")
	assert.ErrorIs(t, err, model.ErrEmptyText)

	got, _ := s.Get(task.ID)
	assert.Equal(t, "a", got.Text)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	require.NoError(t, s.Delete(2))
	ids := []int{}
	for _, task := range s.List() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int{3, 1}, ids)

	assert.ErrorIs(t, s.Delete(2), ErrNotFound)
}

func TestDelete_IDsNeverReused(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	require.NoError(t, s.Delete(2))

	task, err := s.Add("c")
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
}

func TestDeleteWhere(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.SetCompleted(1, true)
	s.SetCompleted(3, true)

	removed := s.DeleteWhere(func(t model.Task) bool { return t.Completed })
	assert.Equal(t, 2, removed)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)
}

func TestDeleteWhere_NoMatch(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	removed := s.DeleteWhere(func(t model.Task) bool { return false })
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, s.Len())
}
