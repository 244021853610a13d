package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600))
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestNew_ExplicitDir(t *testing.T) {
	cfg, err := New("/some/dir")
	require.NoError(t, err)

	assert.Equal(t, "/some/dir", cfg.Dir)
	assert.Equal(t, "/some/dir/token.json", cfg.TokenPath())
	assert.Equal(t, "/some/dir/oauth_client.json", cfg.OAuthClientPath())
	assert.Equal(t, "/some/dir/config.yaml", cfg.SettingsPath())
}

func TestLoadSettings_NoFile(t *testing.T) {
	t.Setenv("TODOLIST_PUSH_LIST", "")
	cfg := &Config{Dir: t.TempDir()}

	s, err := cfg.LoadSettings()
	require.NoError(t, err)

	assert.Nil(t, s.Seed)
	assert.Empty(t, s.PushList)
}

func TestLoadSettings_FromFile(t *testing.T) {
	t.Setenv("TODOLIST_PUSH_LIST", "")
	dir := t.TempDir()
	writeSettings(t, dir, "seed:\n  - Water plants\n  - Call Mum\npush_list: Errands\n")
	cfg := &Config{Dir: dir}

	s, err := cfg.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, []string{"Water plants", "Call Mum"}, s.Seed)
	assert.Equal(t, "Errands", s.PushList)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "push_list: Errands\n")
	t.Setenv("TODOLIST_PUSH_LIST", "Work")
	cfg := &Config{Dir: dir}

	s, err := cfg.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "Work", s.PushList)
	assert.Nil(t, s.Seed)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "seed: [unclosed\n")
	cfg := &Config{Dir: dir}

	_, err := cfg.LoadSettings()
	assert.Error(t, err)
}

func TestTokenLifecycle(t *testing.T) {
	cfg := &Config{Dir: filepath.Join(t.TempDir(), "nested")}

	assert.False(t, cfg.HasToken())
	require.NoError(t, cfg.EnsureDir())
	require.NoError(t, os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600))
	assert.True(t, cfg.HasToken())

	require.NoError(t, cfg.RemoveToken())
	assert.False(t, cfg.HasToken())
}
