package ffmpeg

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Resolve reports the ffmpeg binary to execute. A configured path wins when
// it resolves; otherwise an ffmpeg sitting next to the running executable is
// preferred (bundled installs ship one alongside the tool), falling back to
// PATH lookup. ok is false when no candidate exists, in which case the bare
// name is returned so error messages stay meaningful.
func Resolve(configured string) (string, bool) {
	if configured != "" {
		if resolved, err := exec.LookPath(configured); err == nil {
			return resolved, true
		}
		return configured, false
	}

	if candidate, ok := sidecarCandidate(); ok {
		if info, err := os.Stat(candidate); err == nil && isExecutable(info) {
			return candidate, true
		}
	}

	name := binaryName()
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved, true
	}
	return name, false
}

func sidecarCandidate() (string, bool) {
	self, err := os.Executable()
	if err != nil {
		return "", false
	}
	return filepath.Join(filepath.Dir(self), binaryName()), true
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
