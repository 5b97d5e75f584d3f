package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Validate_Valid(t *testing.T) {
	task := &Task{ID: 1, Text: "Buy milk", CreatedAt: time.Now()}
	assert.NoError(t, task.Validate())
}

func TestTask_Validate_MissingID(t *testing.T) {
	task := &Task{Text: "Buy milk"}
	assert.Error(t, task.Validate())
}

func TestTask_Validate_BlankText(t *testing.T) {
	task := &Task{ID: 1, Text: "  \t "}
	assert.ErrorIs(t, task.Validate(), ErrEmptyText)
}

func TestCleanText(t *testing.T) {
	got, err := CleanText("  Walk dog \n")
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", got)

	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := CleanText(raw)
		assert.ErrorIs(t, err, ErrEmptyText, "input %q", raw)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"all", FilterAll},
		{"Completed", FilterCompleted},
		{" pending ", FilterPending},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFilter_Invalid(t *testing.T) {
	_, err := ParseFilter("done")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestFilter_Apply(t *testing.T) {
	tasks := []Task{
		{ID: 3, Text: "c", Completed: true},
		{ID: 2, Text: "b"},
		{ID: 1, Text: "a", Completed: true},
	}

	assert.Equal(t, tasks, FilterAll.Apply(tasks))
	assert.Equal(t, []Task{tasks[0], tasks[2]}, FilterCompleted.Apply(tasks))
	assert.Equal(t, []Task{tasks[1]}, FilterPending.Apply(tasks))
}

func TestFilter_Apply_Empty(t *testing.T) {
	assert.Empty(t, FilterCompleted.Apply(nil))
}

func TestFilter_Next_Cycles(t *testing.T) {
	assert.Equal(t, FilterPending, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterPending.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
}

func TestCountTasks(t *testing.T) {
	c := CountTasks([]Task{{ID: 1, Completed: true}, {ID: 2}, {ID: 3}})
	assert.Equal(t, Counts{Total: 3, Completed: 1, Pending: 2}, c)
	assert.Equal(t, c.Total, c.Completed+c.Pending)
}

func TestCountTasks_Empty(t *testing.T) {
	assert.Equal(t, Counts{}, CountTasks(nil))
}
