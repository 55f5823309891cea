package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, "failfast", cfg.Update.Policy)
	assert.Equal(t, "#app", cfg.Mount.Selector)
	assert.Equal(t, "div", cfg.Mount.Tag)
	assert.Equal(t, "v-label", cfg.Mount.Class)
}

func TestLoad_NoFileMatchesDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nojs.toml")
	content := `
[update]
policy = "isolate"

[mount]
selector = "#label"
class = "caption"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("NOJS_MOUNT_CLASS", "from-env")
	t.Setenv("NOJS_LOG_VERBOSITY", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "isolate", cfg.Update.Policy)
	assert.Equal(t, "#label", cfg.Mount.Selector)
	assert.Equal(t, "from-env", cfg.Mount.Class)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "div", cfg.Mount.Tag, "unset keys keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[update\npolicy ="), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
