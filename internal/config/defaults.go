package config

// Default configuration values.
const (
	defaultTitle                 = "bough"
	defaultWidth                 = 640
	defaultHeight                = 480
	defaultTPS                   = 60
	defaultTickIntervalMS        = 100
	defaultMoveThreshold         = 10.0
	defaultDoubleClickIntervalMS = 400
	defaultLogLevel              = "info"
	defaultLogFormat             = "console"
)

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
			TPS:    defaultTPS,
		},
		Driver: DriverConfig{
			TickIntervalMS:        defaultTickIntervalMS,
			MoveThreshold:         defaultMoveThreshold,
			DoubleClickIntervalMS: defaultDoubleClickIntervalMS,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("window.title", d.Window.Title)
	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.tps", d.Window.TPS)
	m.viper.SetDefault("window.show_fps", d.Window.ShowFPS)

	m.viper.SetDefault("driver.tick_interval_ms", d.Driver.TickIntervalMS)
	m.viper.SetDefault("driver.move_threshold", d.Driver.MoveThreshold)
	m.viper.SetDefault("driver.double_click_interval_ms", d.Driver.DoubleClickIntervalMS)
	m.viper.SetDefault("driver.debug", d.Driver.Debug)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}
