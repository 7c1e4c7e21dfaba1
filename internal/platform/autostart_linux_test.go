//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDesktopEntry(t *testing.T) {
	entry := buildDesktopEntry("DeepWorkTimer", "/usr/local/bin/deepworktimer", []string{"run", "-v"})
	assert.Contains(t, entry, "Name=DeepWorkTimer\n")
	assert.Contains(t, entry, "Exec=/usr/local/bin/deepworktimer run -v\n")
	assert.Contains(t, entry, "X-GNOME-Autostart-enabled=true")
}

func TestEnableDisableAutostart(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)

	service := NewService()
	require.NoError(t, service.EnableAutostart("DeepWorkTimer", "/usr/bin/deepworktimer"))

	path := filepath.Join(configDir, "autostart", "deepworktimer.desktop")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/usr/bin/deepworktimer\n")

	require.NoError(t, service.DisableAutostart("DeepWorkTimer"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, service.DisableAutostart("DeepWorkTimer"))
	assert.Error(t, service.EnableAutostart("", "/usr/bin/deepworktimer"))
}
