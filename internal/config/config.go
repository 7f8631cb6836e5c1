// Package config loads radiofree settings from toml or yaml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const appName = "radiofree"

var (
	ErrNoChannels    = errors.New("config: no channels")
	ErrBlankChannel  = errors.New("config: blank channel id")
	ErrVolumeRange   = errors.New("config: volume out of range")
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// DefaultChannels are the livestreams played when none are configured.
var DefaultChannels = []string{
	"fxn8p26WTR4", "_43TGUnXCZs", "SsYkibjW_gc", "6xGBpMYed-c",
	"3KR2S3juSqU", "VQ9i-V2i6W0", "2L9vFNMvIBE", "6rReMbO42uE",
	"aKc5bBFNrD0", "WlbpdNJwiKE", "Nkz1ZdFKeMM", "S3pofZsRbB8",
	"2atQnvunGCo", "NofKmH-H76I", "p21RWJYGbPU", "WfVraXyyjZU",
	"3ksvZx4BgD0", "tzKdhbiTaoA", "kCziHoCBrug", "ueupsBPNkSc",
	"0kG8XbRkp1I", "iTnoKgOk1wo", "8f3tfSSiIWk", "NuIAYHVeFYs",
	"2ccaHpy5Ewo", "Wxu9yDI7a6k", "o35TFk-IULM", "hUjRuVhJ_4o",
	"z6NUZMeeCdM", "xcoac7I-J8M", "K6IXPdMAVfM", "gmv54pfxk0Q",
	"zr1bVgZ_IY0", "AQBh9soLSkI",
}

type Config struct {
	Channels            []string `koanf:"channels"`
	Volume              int      `koanf:"volume"`    // 0-100
	Container           string   `koanf:"container"` // window title of the native player
	MaxConsecutiveSkips int      `koanf:"max_consecutive_skips"`
	ResumeLastChannel   bool     `koanf:"resume_last_channel"`
	Format              string   `koanf:"format"` // ytdl format selector
	LogLevel            string   `koanf:"log_level"`
	LogFile             string   `koanf:"log_file"`

	Notifications NotificationsConfig `koanf:"notifications"`
}

// NotificationsConfig holds "live now" notification settings.
type NotificationsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Cooldown string `koanf:"cooldown"` // duration, e.g. "60s"
	Timeout  int32  `koanf:"timeout"`  // ms, -1 = server default
	Icon     string `koanf:"icon"`
}

// Notifications is NotificationsConfig with defaults applied.
type Notifications struct {
	Enabled  bool
	Cooldown time.Duration
	Timeout  int32
	Icon     string
}

const (
	defaultCooldown = 60 * time.Second
	defaultIcon     = "media-playback-start"
)

// Default returns the configuration used when no file sets a key.
func Default() Config {
	return Config{
		Channels:          append([]string(nil), DefaultChannels...),
		Volume:            50,
		Container:         "player",
		ResumeLastChannel: true,
		Format:            "bestaudio/best",
		LogLevel:          "info",
		LogFile:           filepath.Join(xdg.StateHome, appName, appName+".log"),
		Notifications: NotificationsConfig{
			Enabled:  true,
			Cooldown: defaultCooldown.String(),
			Timeout:  -1,
			Icon:     defaultIcon,
		},
	}
}

// Load reads the configuration. An explicit path replaces the search
// paths and must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return loadFrom([]string{path})
	}
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	// Later files win.
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Notifications.Icon = expandPath(cfg.Notifications.Icon)
	for i, id := range cfg.Channels {
		cfg.Channels[i] = strings.TrimSpace(id)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/radiofree/config.{yaml,toml}
		filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if len(c.Channels) == 0 {
		return ErrNoChannels
	}
	for i, id := range c.Channels {
		if id == "" {
			return fmt.Errorf("%w at index %d", ErrBlankChannel, i)
		}
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("%w: %d", ErrVolumeRange, c.Volume)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// GetNotificationsConfig returns the notification settings with defaults
// applied.
func (c *Config) GetNotificationsConfig() Notifications {
	n := Notifications{
		Enabled:  c.Notifications.Enabled,
		Cooldown: defaultCooldown,
		Timeout:  c.Notifications.Timeout,
		Icon:     c.Notifications.Icon,
	}
	if d, err := time.ParseDuration(c.Notifications.Cooldown); err == nil && d > 0 {
		n.Cooldown = d
	}
	if n.Timeout < -1 {
		n.Timeout = -1
	}
	return n
}

// MaxSkips returns the consecutive skip limit, 0 meaning unlimited.
func (c *Config) MaxSkips() int {
	return max(0, c.MaxConsecutiveSkips)
}
