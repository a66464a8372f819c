package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, FontBuiltin, c.SelectedFont)
	assert.Empty(t, c.DeviceHistory)
	assert.Empty(t, c.ProjectDir)
}

func TestLoadMalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml {"), 0644))
	c := Load(path)
	assert.Equal(t, FontBuiltin, c.SelectedFont)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	c := &Config{
		DeviceHistory: []string{"AA:BB:CC:DD:EE:FF"},
		ProjectDir:    "/home/me/anims",
		SelectedFont:  "tiny.slf",
	}
	require.NoError(t, Save(path, c))

	got := Load(path)
	assert.Equal(t, c, got)
}

func TestRememberDevice(t *testing.T) {
	c := Default()
	c.RememberDevice("aa:bb:cc:dd:ee:ff")
	c.RememberDevice("11:22:33:44:55:66")
	c.RememberDevice("AA:BB:CC:DD:EE:FF ")

	assert.Equal(t, []string{"AA:BB:CC:DD:EE:FF", "11:22:33:44:55:66"}, c.DeviceHistory,
		"re-remembering moves the address to the front without duplicating")

	c.RememberDevice("")
	c.RememberDevice("   ")
	assert.Len(t, c.DeviceHistory, 2, "blank addresses are ignored")
}

func TestRememberDeviceCapsHistory(t *testing.T) {
	c := Default()
	for i := 0; i < maxDeviceHistory+5; i++ {
		c.RememberDevice(fmt.Sprintf("00:00:00:00:00:%02X", i))
	}
	assert.Len(t, c.DeviceHistory, maxDeviceHistory)
	assert.Equal(t, fmt.Sprintf("00:00:00:00:00:%02X", maxDeviceHistory+4), c.DeviceHistory[0])
}
