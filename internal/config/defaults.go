package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogDir       = "~/.local/share/mediascan/logs"
	defaultProbeTimeout = 60
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultCacheEnabled = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir(),
			LogDir:   defaultLogDir,
		},
		FFmpeg: FFmpeg{
			ProbeTimeout: defaultProbeTimeout,
		},
		Cache: Cache{
			Enabled: defaultCacheEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "mediascan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/mediascan"
	}
	return filepath.Join(home, ".cache", "mediascan")
}
