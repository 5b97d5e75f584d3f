package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_filter: pending\nnotice_lifetime: 5s\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, model.FilterPending, cfg.DefaultFilter)
	assert.Equal(t, 5*time.Second, cfg.NoticeLifetime)
	assert.Equal(t, DefaultDeleteDelay, cfg.DeleteDelay)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidFilter(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_filter: done\n"), 0644)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_filter")
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_filter: pending\n"), 0644)
	t.Setenv("TASKLIST_DEFAULT_FILTER", "completed")
	t.Setenv("TASKLIST_DELETE_DELAY", "0s")
	t.Setenv("TASKLIST_ALT_SCREEN", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, model.FilterCompleted, cfg.DefaultFilter)
	assert.Equal(t, time.Duration(0), cfg.DeleteDelay)
	assert.True(t, cfg.AltScreen)
}

func TestLoad_BadEnvDuration(t *testing.T) {
	t.Setenv("TASKLIST_NOTICE_LIFETIME", "soon")
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TASKLIST_NOTICE_LIFETIME")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		DefaultFilter:  model.FilterPending,
		NoticeLifetime: 2 * time.Second,
		DeleteDelay:    250 * time.Millisecond,
		AltScreen:      true,
	}

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	require.NoError(t, Save(dir, Default()))
	_, err := os.Stat(Path(dir))
	assert.NoError(t, err)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.NoticeLifetime = 0
	assert.Error(t, Save(t.TempDir(), cfg))
}
