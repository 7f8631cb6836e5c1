//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/logs/radio.log", filepath.Join(home, "logs", "radio.log")},
		{"absolute path unchanged", "/var/log/radio.log", "/var/log/radio.log"},
		{"relative path unchanged", "radio.log", "radio.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)

	// Last path should be local config.toml
	assert.Equal(t, "config.toml", paths[len(paths)-1])
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultChannels, cfg.Channels)
	assert.Len(t, cfg.Channels, 34)
	assert.Equal(t, 50, cfg.Volume)
	assert.Equal(t, "player", cfg.Container)
	assert.Equal(t, 0, cfg.MaxSkips())
	assert.True(t, cfg.ResumeLastChannel)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Notifications.Enabled)
}

func TestLoadFrom_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
channels = ["aaa", " bbb "]
volume = 80
max_consecutive_skips = 3
resume_last_channel = false

[notifications]
enabled = false
cooldown = "2m"
timeout = 5000
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, []string{"aaa", "bbb"}, cfg.Channels)
	assert.Equal(t, 80, cfg.Volume)
	assert.Equal(t, 3, cfg.MaxSkips())
	assert.False(t, cfg.ResumeLastChannel)
	assert.Equal(t, "player", cfg.Container, "unset keys keep defaults")

	n := cfg.GetNotificationsConfig()
	assert.False(t, n.Enabled)
	assert.Equal(t, 2*time.Minute, n.Cooldown)
	assert.Equal(t, int32(5000), n.Timeout)
}

func TestLoadFrom_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
channels:
  - ccc
log_level: debug
notifications:
  cooldown: 30s
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, []string{"ccc"}, cfg.Channels)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.GetNotificationsConfig().Cooldown)
	assert.True(t, cfg.GetNotificationsConfig().Enabled)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeFile(t, "a.toml", "volume = 10\ncontainer = \"first\"\n")
	second := writeFile(t, "b.toml", "volume = 20\n")

	cfg, err := loadFrom([]string{first, second})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Volume)
	assert.Equal(t, "first", cfg.Container)
}

func TestLoadFrom_MissingFilesSkipped(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "absent.toml")})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Volume)
}

func TestLoadFrom_UnknownFormat(t *testing.T) {
	path := writeFile(t, "config.ini", "volume=1")

	_, err := loadFrom([]string{path})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults valid", func(*Config) {}, nil},
		{"no channels", func(c *Config) { c.Channels = nil }, ErrNoChannels},
		{"blank channel", func(c *Config) { c.Channels = []string{"a", ""} }, ErrBlankChannel},
		{"volume too high", func(c *Config) { c.Volume = 101 }, ErrVolumeRange},
		{"volume negative", func(c *Config) { c.Volume = -1 }, ErrVolumeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestGetNotificationsConfig_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		cooldown     string
		timeout      int32
		wantCooldown time.Duration
		wantTimeout  int32
	}{
		{"valid", "90s", 0, 90 * time.Second, 0},
		{"unparsable cooldown", "soon", -1, 60 * time.Second, -1},
		{"zero cooldown", "0s", -1, 60 * time.Second, -1},
		{"timeout below -1", "60s", -7, 60 * time.Second, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Notifications.Cooldown = tt.cooldown
			cfg.Notifications.Timeout = tt.timeout

			n := cfg.GetNotificationsConfig()
			assert.Equal(t, tt.wantCooldown, n.Cooldown)
			assert.Equal(t, tt.wantTimeout, n.Timeout)
		})
	}
}
