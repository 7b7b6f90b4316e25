package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no project config around

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_url = \"http://todo.internal:9000\"\ntimeout = \"3s\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, projectConfigName), []byte(content), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://todo.internal:9000", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_url = \"http://from-file:1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, projectConfigName), []byte(content), 0o644))
	t.Chdir(dir)
	t.Setenv(envAPIURL, "http://from-env:2")
	t.Setenv(envTimeout, "1m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:2", cfg.APIURL)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestBadTimeoutRejected(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envTimeout, "soon")

	_, err := Load()
	assert.Error(t, err)
}
