package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG lookup at temp dirs and returns the config dir.
func isolate(t *testing.T) (configDir, dataHome string) {
	t.Helper()
	t.Setenv("ENV", "")
	dataHome = t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	return t.TempDir(), dataHome
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(body), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "#ff0000", mgr.viper.GetString("colors.start_color"))
	assert.Equal(t, "#0000ff", mgr.viper.GetString("colors.end_color"))
	assert.Equal(t, 10, mgr.viper.GetInt("colors.steps"))
	assert.Equal(t, defaultJobs, mgr.viper.GetInt("cli.jobs"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestManager_Load_CreatesDefaultConfig(t *testing.T) {
	configDir, dataHome := isolate(t)

	mgr, err := NewManagerAt(configDir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Colors, cfg.Colors)
	assert.Equal(t, filepath.Join(dataHome, appName, databaseName), cfg.Database.Path)

	assert.FileExists(t, filepath.Join(configDir, configName))
	assert.FileExists(t, filepath.Join(configDir, schemaName))
	assert.Equal(t, filepath.Join(configDir, configName), mgr.GetConfigFile())
}

func TestManager_Load_ReadsAndNormalizesFile(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, `
[database]
path = "/tmp/colors.db"

[logging]
level = "DEBUG"
format = "JSON"

[colors]
start_color = "00FF00"
steps = 5
font_size = 120

[cli]
jobs = 0
`)

	mgr, err := NewManagerAt(configDir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/tmp/colors.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "#00ff00", cfg.Colors.StartColor)
	assert.Equal(t, "#0000ff", cfg.Colors.EndColor)
	assert.Equal(t, 5, cfg.Colors.Steps)
	assert.Equal(t, 120, cfg.Colors.FontSize)
	assert.Equal(t, defaultJobs, cfg.CLI.Jobs)
}

func TestManager_Load_EnvironmentOverrides(t *testing.T) {
	configDir, _ := isolate(t)
	t.Setenv("COLORLINE_COLORS_STEPS", "7")
	t.Setenv("COLORLINE_LOG_LEVEL", "warn")
	writeConfig(t, configDir, "[colors]\nsteps = 3\n")

	mgr, err := NewManagerAt(configDir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 7, cfg.Colors.Steps)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_Load_AggregatesValidationErrors(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, `
[logging]
level = "loud"

[colors]
start_color = "red"
steps = 0
`)

	mgr, err := NewManagerAt(configDir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "colors.start_color")
	assert.Contains(t, err.Error(), "colors.steps")
}

func TestManager_Get_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_Watch_ReloadsOnChange(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, "[colors]\nsteps = 3\n")

	mgr, err := NewManagerAt(configDir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var steps atomic.Int64
	mgr.OnConfigChange(func(c *Config) { steps.Store(int64(c.Colors.Steps)) })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	writeConfig(t, configDir, "[colors]\nsteps = 9\n")

	require.Eventually(t, func() bool { return steps.Load() == 9 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 9, mgr.Get().Colors.Steps)
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "#aabbcc", normalizeHex(" AABBCC "))
	assert.Equal(t, "#aabbcc", normalizeHex("#AaBbCc"))
	assert.Equal(t, "", normalizeHex(""))
}
