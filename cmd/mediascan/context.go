package main

import (
	"log/slog"
	"strings"
	"sync"

	"mediascan/internal/config"
	"mediascan/internal/ffmpeg"
	"mediascan/internal/logging"
	"mediascan/internal/probecache"
	"mediascan/internal/scan"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

// withScanner builds the runner and cache store for one command invocation
// and tears the store down afterwards.
func (c *commandContext) withScanner(fn func(*scan.Scanner) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	binary, _ := ffmpeg.Resolve(cfg.FFmpeg.Binary)
	runner := ffmpeg.NewRunner(binary, cfg.Paths.CacheDir)

	var store *probecache.Store
	if cfg.Cache.Enabled {
		store, err = probecache.Open(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	return fn(scan.New(cfg, runner, store, c.logger()))
}

func (c *commandContext) withStore(fn func(*probecache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := probecache.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}
