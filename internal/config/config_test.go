package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.FFmpeg.ProbeTimeout != defaultProbeTimeout {
		t.Fatalf("expected default probe timeout, got %d", cfg.FFmpeg.ProbeTimeout)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
cache_dir = "` + filepath.Join(dir, "cache") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[ffmpeg]
binary = "  /opt/ffmpeg/bin/ffmpeg  "
probe_timeout = 15

[logging]
format = " JSON "
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected trimmed binary, got %q", cfg.FFmpeg.Binary)
	}
	if cfg.FFmpeg.ProbeTimeout != 15 {
		t.Fatalf("expected probe timeout 15, got %d", cfg.FFmpeg.ProbeTimeout)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowered logging values, got %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.CacheDir) {
		t.Fatalf("expected absolute cache dir, got %q", cfg.Paths.CacheDir)
	}
}

func TestLoadRejectsInvalidLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected invalid log format to fail validation")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := ExpandPath("~/cache")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if expanded != filepath.Join(home, "cache") {
		t.Fatalf("expected home-relative expansion, got %q", expanded)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.CacheDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestCreateSampleWritesEmbeddedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[ffmpeg]") {
		t.Fatalf("sample config missing ffmpeg section: %q", string(data))
	}
}
