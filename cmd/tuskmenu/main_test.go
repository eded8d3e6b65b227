package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigCommand_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TUSKMENU_RUNTIME_PATH", dir)
	t.Setenv("TUSKMENU_TITLE_WIDTH", "")
	require.NoError(t, os.Unsetenv("TUSKMENU_TITLE_WIDTH"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TUSKMENU_TITLE_WIDTH=40\n"), 0600))

	out := execute(t, "config")

	assert.Contains(t, out, "TUSKMENU_RUNTIME_PATH="+dir+"\n")
	assert.Contains(t, out, "TUSKMENU_UI=line\n")
	assert.Contains(t, out, "TUSKMENU_TITLE_WIDTH=40\n")
	assert.Contains(t, out, "TUSKMENU_SEED=true\n")
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TUSKMENU_RUNTIME_PATH", dir)

	out := execute(t, "seed")
	assert.Contains(t, out, "Demo catalog loaded into "+filepath.Join(dir, "tuskmenu.db"))
	assert.FileExists(t, filepath.Join(dir, "tuskmenu.log"))

	out = execute(t, "seed")
	assert.Contains(t, out, "nothing to do")
}

func TestConfigCommand_InvalidUI(t *testing.T) {
	t.Setenv("TUSKMENU_RUNTIME_PATH", t.TempDir())
	t.Setenv("TUSKMENU_UI", "gui")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"config"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown UI "gui"`)
}
