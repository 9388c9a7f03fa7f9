package config

import (
	"fmt"
	"strings"

	"github.com/phanxgames/bough/internal/logging"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.width and window.height must be positive")
	}
	if config.Window.TPS < 0 {
		validationErrors = append(validationErrors, "window.tps must be non-negative")
	}

	if config.Driver.TickIntervalMS <= 0 {
		validationErrors = append(validationErrors, "driver.tick_interval_ms must be positive")
	}
	if config.Driver.MoveThreshold < 0 {
		validationErrors = append(validationErrors, "driver.move_threshold must be non-negative")
	}
	if config.Driver.DoubleClickIntervalMS <= 0 {
		validationErrors = append(validationErrors, "driver.double_click_interval_ms must be positive")
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(validationErrors, "; "))
	}
	return nil
}
