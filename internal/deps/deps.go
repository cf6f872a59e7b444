package deps

import (
	"fmt"
	"strings"

	"mediascan/internal/ffmpeg"
)

// Status reports the availability of an external dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// CheckFFmpeg resolves the ffmpeg binary the tool would execute and reports
// its availability. The configured path wins over sidecar and PATH lookup.
func CheckFFmpeg(configured string) Status {
	status := Status{
		Name:        "FFmpeg",
		Description: "Probes media files and reports format capabilities",
	}

	resolved, ok := ffmpeg.Resolve(strings.TrimSpace(configured))
	status.Command = resolved
	status.Available = ok
	if !ok {
		status.Detail = fmt.Sprintf("binary %q not found", resolved)
	}
	return status
}

// Check evaluates every external dependency of the tool.
func Check(configuredFFmpeg string) []Status {
	return []Status{CheckFFmpeg(configuredFFmpeg)}
}
