package markdown

import (
	"strings"
	"testing"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMeta struct {
	Title  string       `yaml:"title"`
	Filter string       `yaml:"filter,omitempty"`
	Counts model.Counts `yaml:"counts"`
}

func TestParse_AllFields(t *testing.T) {
	input := `---
title: "Groceries"
filter: pending
counts:
  total: 2
  completed: 1
  pending: 1
---

add Buy milk
`
	meta, body, err := Parse[testMeta](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Groceries", meta.Title)
	assert.Equal(t, "pending", meta.Filter)
	assert.Equal(t, model.Counts{Total: 2, Completed: 1, Pending: 1}, meta.Counts)
	assert.Equal(t, "add Buy milk", body)
}

func TestParse_NoFrontmatter(t *testing.T) {
	meta, body, err := Parse[testMeta](strings.NewReader("add Walk dog"))
	// adrg/frontmatter returns an empty struct when no front matter is found
	require.NoError(t, err)
	assert.Equal(t, "", meta.Title)
	assert.Equal(t, "add Walk dog", body)
}

func TestParse_MalformedYAML(t *testing.T) {
	input := "---\n{{invalid yaml\n---\n"
	_, _, err := Parse[testMeta](strings.NewReader(input))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	original := testMeta{Title: "Today", Filter: "all", Counts: model.Counts{Total: 1, Pending: 1}}
	body := "- [ ] Walk dog"

	data, err := Marshal(original, body)
	require.NoError(t, err)

	parsed, parsedBody, err := Parse[testMeta](strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.Equal(t, body, parsedBody)
}

func TestMarshal_EmptyBody(t *testing.T) {
	data, err := Marshal(testMeta{Title: "Empty"}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
	assert.True(t, strings.HasSuffix(string(data), "---\n"))
}

func TestChecklist(t *testing.T) {
	got := Checklist([]model.Task{
		{ID: 2, Text: "Walk dog"},
		{ID: 1, Text: "Buy *milk*", Completed: true},
	})
	assert.Equal(t, "- [ ] Walk dog\n- [x] Buy \\*milk\\*\n", got)
}

func TestChecklist_Empty(t *testing.T) {
	assert.Equal(t, "", Checklist(nil))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# No tasks\n\nAdd a new task to get started!", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Add a new task to get started!")
}
