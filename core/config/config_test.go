package config

import (
	"os"
	"path/filepath"
	"testing"

	"asset-registry/core/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, manager.SourceLocal, cfg.Project.Source)
	assert.Equal(t, 64, cfg.Project.MaxDepth)
	assert.Equal(t, 8, cfg.Project.FanOut)
	assert.Equal(t, 30, cfg.Project.LoadTimeoutSeconds)
	assert.True(t, cfg.Project.Persist)
	assert.True(t, cfg.Serializer.ModelMeshes)
	assert.Equal(t, 250, cfg.Watch.DebounceMillis)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "content")
	t.Setenv("PROJECT_FAN_OUT", "2")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "content", cfg.Project.Root)
	assert.Equal(t, 2, cfg.Project.FanOut)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registered so the values written by the .env file are restored afterwards
	t.Setenv("PROJECT_SOURCE", "")
	t.Setenv("STORAGE_BUCKET", "")

	dir := t.TempDir()
	content := "PROJECT_SOURCE=storage\nSTORAGE_BUCKET=game-assets\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, manager.SourceStorage, cfg.Project.Source)
	assert.Equal(t, "game-assets", cfg.Storage.Bucket)
}

func TestLoadConfig_InvalidSource(t *testing.T) {
	t.Setenv("PROJECT_SOURCE", "ftp")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "invalid project source")
}
