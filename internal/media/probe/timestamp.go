package probe

import (
	"regexp"
	"time"
)

const timestampLayout = "15:04:05.00"

// timestampShape enforces two digits per field; time.Parse alone would also
// accept unpadded hours.
var timestampShape = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}\.[0-9]{2}$`)

// ParseTimestamp converts an ffmpeg clock string ("HH:MM:SS.ss") into
// elapsed milliseconds. Both the value and the zero timestamp are parsed
// against the same reference date, so subtracting them yields a plain
// duration with no calendar or timezone concerns. Malformed input reports
// ok=false; callers fall back to a zero duration.
func ParseTimestamp(value string) (int64, bool) {
	if !timestampShape.MatchString(value) {
		return 0, false
	}
	parsed, err := time.Parse(timestampLayout, value)
	if err != nil {
		return 0, false
	}
	base, err := time.Parse(timestampLayout, "00:00:00.00")
	if err != nil {
		return 0, false
	}
	return parsed.Sub(base).Milliseconds(), true
}
