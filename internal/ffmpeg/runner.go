package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrBusy indicates another ffmpeg invocation already holds the lock.
var ErrBusy = errors.New("ffmpeg invocation already in progress")

// Runner executes ffmpeg commands and returns their diagnostic output.
// Invocations are serialized through a file lock shared by every process
// pointed at the same lock directory.
type Runner struct {
	binary string
	lock   *flock.Flock
}

// NewRunner constructs a runner for the given binary. lockDir names an
// existing directory that hosts the invocation lock file.
func NewRunner(binary, lockDir string) *Runner {
	return &Runner{
		binary: strings.TrimSpace(binary),
		lock:   flock.New(filepath.Join(lockDir, "ffmpeg.lock")),
	}
}

// Binary returns the binary the runner executes.
func (r *Runner) Binary() string {
	return r.binary
}

// Inspect runs `ffmpeg -i <path>` and returns the diagnostic text ffmpeg
// prints about the input. ffmpeg exits nonzero for probe-only invocations
// ("At least one output file must be specified"), so a nonzero exit with
// output present is the success path here.
func (r *Runner) Inspect(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("ffmpeg inspect: empty path")
	}
	return r.run(ctx, true, "-i", path)
}

// Formats runs `ffmpeg -formats` and returns the capability listing.
func (r *Runner) Formats(ctx context.Context) (string, error) {
	return r.run(ctx, false, "-formats")
}

func (r *Runner) run(ctx context.Context, tolerateExit bool, args ...string) (string, error) {
	if r.binary == "" {
		return "", errors.New("ffmpeg run: no binary configured")
	}

	locked, err := r.lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("acquire ffmpeg lock: %w", err)
	}
	if !locked {
		return "", ErrBusy
	}
	defer func() { _ = r.lock.Unlock() }()

	cmd := exec.CommandContext(ctx, r.binary, args...)
	output, err := cmd.CombinedOutput()
	text := string(output)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("ffmpeg %s: %w", args[0], ctxErr)
		}
		var exitErr *exec.ExitError
		if tolerateExit && errors.As(err, &exitErr) && strings.TrimSpace(text) != "" {
			return text, nil
		}
		return "", fmt.Errorf("ffmpeg %s: %w: %s", args[0], err, strings.TrimSpace(text))
	}
	return text, nil
}
