package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.FFmpeg.ProbeTimeout < 0 {
		return fmt.Errorf("ffmpeg.probe_timeout must not be negative, got %d", c.FFmpeg.ProbeTimeout)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
