package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/testutil"
)

func TestInit_WritesLoadableDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	a := testutil.NewApp(t, nil)

	out, err := testutil.ExecuteCLICommand(t, a, InitCmd(), []string{})
	require.NoError(t, err)

	path := filepath.Join(dir, "sage", "config.yaml")
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	cfg, err := config.Load()
	require.NoError(t, err)
	want := config.Default()
	assert.Equal(t, want.KeyMappings, cfg.KeyMappings)
	assert.Equal(t, want.Chat.ContinuationWindow, cfg.Chat.ContinuationWindow)
	assert.Equal(t, want.Storage.Backend, cfg.Storage.Backend)
}

func TestInit_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	a := testutil.NewApp(t, nil)

	path := filepath.Join(dir, "sage", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	_, err := testutil.ExecuteCLICommand(t, a, InitCmd(), []string{})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.True(t, cli.IsReported(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: info\n", string(data))

	_, err = testutil.ExecuteCLICommand(t, a, InitCmd(), []string{"--force"})
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key_mappings")
}
