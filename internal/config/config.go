// Package config provides configuration management for bough with Viper integration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/phanxgames/bough"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

const (
	appName    = "bough"
	configName = "config.toml"
	envPrefix  = "BOUGH"
)

// Config represents the complete configuration for bough.
type Config struct {
	Window  WindowConfig  `mapstructure:"window" toml:"window"`
	Driver  DriverConfig  `mapstructure:"driver" toml:"driver"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Title   string `mapstructure:"title" toml:"title"`
	Width   int    `mapstructure:"width" toml:"width"`
	Height  int    `mapstructure:"height" toml:"height"`
	TPS     int    `mapstructure:"tps" toml:"tps"`
	ShowFPS bool   `mapstructure:"show_fps" toml:"show_fps"`
}

// DriverConfig holds the event loop settings. Durations are in milliseconds.
type DriverConfig struct {
	TickIntervalMS        int     `mapstructure:"tick_interval_ms" toml:"tick_interval_ms"`
	MoveThreshold         float64 `mapstructure:"move_threshold" toml:"move_threshold"`
	DoubleClickIntervalMS int     `mapstructure:"double_click_interval_ms" toml:"double_click_interval_ms"`
	Debug                 bool    `mapstructure:"debug" toml:"debug"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// Bough converts the driver section into a bough.DriverConfig. logger may be nil.
func (c DriverConfig) Bough(logger *zerolog.Logger) bough.DriverConfig {
	return bough.DriverConfig{
		TickInterval:        time.Duration(c.TickIntervalMS) * time.Millisecond,
		MoveThreshold:       c.MoveThreshold,
		DoubleClickInterval: time.Duration(c.DoubleClickIntervalMS) * time.Millisecond,
		Debug:               c.Debug,
		Logger:              logger,
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	path      string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager creates a configuration manager for the file at path. An empty
// path selects DefaultPath. The file does not need to exist.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// Set up environment variable support: BOUGH_DRIVER_TICK_INTERVAL_MS etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v, path: path, log: zerolog.Nop()}
	m.setDefaults()
	return m, nil
}

// SetLogger sets the logger used to report reload failures.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = l
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return m.path
}

// DefaultPath returns $XDG_CONFIG_HOME/bough/config.toml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, configName), nil
}

// Load loads the configuration from file and environment variables. A
// missing file is not an error; defaults and environment apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	config, err := m.read()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) read() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.OnConfigChange(func(ev fsnotify.Event) {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		if err := m.reload(); err != nil {
			m.mu.RLock()
			log := m.log
			m.mu.RUnlock()
			log.Warn().Err(err).Str("path", m.path).Msg("failed to reload config")
			return
		}

		// Notify callbacks
		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file and swaps the config on success.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	config, err := m.read()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}
