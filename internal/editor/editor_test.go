package editor

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCmd_Precedence(t *testing.T) {
	t.Setenv("EDITOR", "nano")
	t.Setenv("VISUAL", "code")
	assert.Equal(t, "nano", editorCmd())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "code", editorCmd())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vi", editorCmd())
}

func TestCommand_SplitsArgs(t *testing.T) {
	t.Setenv("EDITOR", "code --wait")
	cmd := Command("/tmp/x.txt")
	assert.Equal(t, []string{"code", "--wait", "/tmp/x.txt"}, cmd.Args)
}

func TestCommand_BlankEditorFallsBack(t *testing.T) {
	t.Setenv("EDITOR", "   ")
	t.Setenv("VISUAL", "\t")
	var cmd *exec.Cmd
	require.NotPanics(t, func() { cmd = Command("/tmp/x.txt") })
	assert.Equal(t, []string{"vi", "/tmp/x.txt"}, cmd.Args)

	t.Setenv("VISUAL", " nano ")
	assert.Equal(t, "nano", editorCmd())
}

func TestDraft_RoundTrip(t *testing.T) {
	d, err := NewDraft("Buy milk")
	require.NoError(t, err)
	t.Cleanup(func() { d.Remove() })

	got, err := d.Read()
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got)

	require.NoError(t, os.WriteFile(d.Path, []byte("Buy\n oat milk \n"), 0644))
	got, err = d.Read()
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got)
}

func TestDraft_Remove(t *testing.T) {
	d, err := NewDraft("x")
	require.NoError(t, err)
	require.NoError(t, d.Remove())
	_, err = os.Stat(d.Path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, d.Remove())
}
