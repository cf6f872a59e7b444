package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFFmpegWithConfiguredBinary(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}

	status := CheckFFmpeg(binary)
	if !status.Available {
		t.Fatalf("expected configured binary to be available: %+v", status)
	}
	if status.Command != binary {
		t.Fatalf("expected command %q, got %q", binary, status.Command)
	}
	if status.Detail != "" {
		t.Fatalf("expected empty detail, got %q", status.Detail)
	}
}

func TestCheckFFmpegMissingConfiguredBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing-ffmpeg")
	status := CheckFFmpeg(missing)
	if status.Available {
		t.Fatalf("expected missing binary to be unavailable: %+v", status)
	}
	if status.Detail == "" {
		t.Fatal("expected detail describing the missing binary")
	}
}

func TestCheckReturnsAllRequirements(t *testing.T) {
	statuses := Check("")
	if len(statuses) != 1 {
		t.Fatalf("expected one requirement, got %d", len(statuses))
	}
	if statuses[0].Name != "FFmpeg" {
		t.Fatalf("unexpected requirement %q", statuses[0].Name)
	}
}
