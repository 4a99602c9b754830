// Package config loads the application settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const maxConfigFileBytes int64 = 64 * 1024

// ErrInvalid is returned when the file parses but holds unusable values.
var ErrInvalid = errors.New("invalid config")

// Feed sources.
const (
	SourceWebSocket = "websocket"
	SourceEvdev     = "evdev"
	SourceTerminal  = "terminal"
)

// Displays.
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// Config is the runtime configuration.
type Config struct {
	// Source selects where key notifications come from.
	Source string `yaml:"source"`
	// ListenAddr is the loopback address the websocket source listens on.
	ListenAddr string `yaml:"listen_addr"`
	// Device is the evdev device path. Empty picks the first keyboard.
	Device string `yaml:"device"`
	// Display selects the renderer: a desktop window or the terminal.
	Display string `yaml:"display"`
	Lang    string `yaml:"lang"`
	// ClickSound plays a short tone for every key that reaches the ticker.
	ClickSound bool `yaml:"click_sound"`
	// ToggleHotkey shows or hides the window, e.g. "ctrl+shift+k". Empty disables it.
	ToggleHotkey string `yaml:"toggle_hotkey"`
	// TrayIcon is an optional PNG replacing the bundled tray icon.
	TrayIcon string `yaml:"tray_icon"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source:     SourceWebSocket,
		ListenAddr: "127.0.0.1:17321",
		Display:    DisplayWindow,
		LogLevel:   "info",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "keyticker", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxConfigFileBytes+1))
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if int64(len(raw)) > maxConfigFileBytes {
		return cfg, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalid, path, maxConfigFileBytes)
	}
	return Parse(raw)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.Display = strings.ToLower(strings.TrimSpace(c.Display))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.ToggleHotkey = strings.TrimSpace(c.ToggleHotkey)
	if c.Source == "" {
		c.Source = SourceWebSocket
	}
	if c.Display == "" {
		c.Display = DisplayWindow
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch c.Source {
	case SourceWebSocket, SourceEvdev, SourceTerminal:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalid, c.Source)
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal:
	default:
		return fmt.Errorf("%w: unknown display %q", ErrInvalid, c.Display)
	}
	if c.Source == SourceTerminal && c.Display == DisplayTerminal {
		return fmt.Errorf("%w: terminal source and terminal display cannot share the terminal", ErrInvalid)
	}
	if c.Source == SourceWebSocket {
		if err := validateListenAddr(c.ListenAddr); err != nil {
			return err
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// validateListenAddr only accepts loopback addresses: anything that reaches
// the websocket source is shown on screen as typed keys.
func validateListenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: listen_addr is required for the websocket source", ErrInvalid)
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: listen_addr %q: %v", ErrInvalid, addr, err)
	}
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
		return fmt.Errorf("%w: listen_addr %q is not a loopback address", ErrInvalid, addr)
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
}
