package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mediascan/internal/config"
	"mediascan/internal/ffmpeg"
	"mediascan/internal/media/codecs"
	"mediascan/internal/media/probe"
	"mediascan/internal/probecache"
)

// Runner abstracts the ffmpeg invocations the scanner needs.
type Runner interface {
	Inspect(ctx context.Context, path string) (string, error)
	Formats(ctx context.Context) (string, error)
}

// Scanner orchestrates probing: cache lookup, ffmpeg invocation, parsing,
// and cache writeback.
type Scanner struct {
	cfg    *config.Config
	runner Runner
	store  *probecache.Store
	logger *slog.Logger
}

// Result pairs parsed media info with its cache provenance.
type Result struct {
	Info   probe.Info
	Cached bool
}

// New constructs a scanner. store may be nil when caching is disabled.
func New(cfg *config.Config, runner Runner, store *probecache.Store, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		cfg:    cfg,
		runner: runner,
		store:  store,
		logger: logger.With("component", "scan"),
	}
}

// Inspect returns media info for path, from cache when the file is
// unchanged, otherwise by probing. The per-invocation timeout comes from
// configuration; ctx still governs cancellation.
func (s *Scanner) Inspect(ctx context.Context, path string) (Result, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return Result{}, fmt.Errorf("inspect %s: is a directory", path)
	}
	size := stat.Size()
	mtime := stat.ModTime().UTC().Unix()

	if s.store != nil && s.cfg.Cache.Enabled {
		entry, err := s.store.Lookup(ctx, path, size, mtime)
		if err != nil {
			return Result{}, err
		}
		if entry != nil {
			s.logger.Debug("cache hit", "source", path)
			return Result{Info: entry.Info, Cached: true}, nil
		}
	}

	probeCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	output, err := s.runner.Inspect(probeCtx, path)
	if err != nil {
		if errors.Is(err, ffmpeg.ErrBusy) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("probe %s: %w", path, err)
	}

	info := probe.ParseMediaInfo(path, output)
	s.logger.Debug("probe complete",
		"source", path,
		"container", info.Container.Token(),
		"duration_ms", info.DurationMs,
	)

	if s.store != nil && s.cfg.Cache.Enabled {
		if _, err := s.store.Save(ctx, info, size, mtime); err != nil {
			// A cache write failure degrades to an uncached probe.
			s.logger.Warn("cache write failed", "source", path, "error", err)
		}
	}

	return Result{Info: info}, nil
}

// SupportedContainers scans the ffmpeg build's capability listing.
func (s *Scanner) SupportedContainers(ctx context.Context) ([]codecs.Container, error) {
	probeCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	output, err := s.runner.Formats(probeCtx)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	return probe.ParseSupportedContainers(output), nil
}

func (s *Scanner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.cfg.FFmpeg.ProbeTimeout) * time.Second
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
