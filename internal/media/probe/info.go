package probe

import (
	"regexp"
	"strings"

	"mediascan/internal/media/codecs"
)

// Info holds the metadata extracted from one ffmpeg probe. Zero-valued
// fields mean the probe output did not contain (or the parser did not
// recognize) that piece of information. Numeric-looking fields stay textual
// because ffmpeg prints non-integer values such as "19.01" fps.
type Info struct {
	SourcePath        string
	DurationMs        int64
	Container         codecs.Container
	VideoCodec        codecs.VideoCodec
	VideoResolution   string
	VideoBitrateKbps  string
	VideoFramerate    string
	AudioCodec        codecs.AudioCodec
	AudioSampleRateHz string
	AudioBitrateKbps  string
	AudioChannels     int
}

// HasVideo reports whether a video stream line was recognized.
func (i Info) HasVideo() bool {
	return i.VideoCodec != "" || i.VideoResolution != ""
}

// HasAudio reports whether an audio stream line was recognized.
func (i Info) HasAudio() bool {
	return i.AudioCodec != "" || i.AudioSampleRateHz != ""
}

// resolutionPattern requires a space or comma after the digits so that
// hex codec tags like "0x31637661" are not mistaken for dimensions.
var resolutionPattern = regexp.MustCompile(`[0-9]+x[0-9]+[ ,]`)

// ParseMediaInfo scans ffmpeg `-i` diagnostic output for one input and
// returns a best-effort Info. It never fails: malformed or unrelated lines
// are skipped and unresolved fields keep their absent values.
//
// Example input:
//
//	Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'ExampleVideo.mp4':
//	  Metadata:
//	    major_brand     : mp42
//	  Duration: 00:02:22.86, start: 0.000000, bitrate: 4569 kb/s
//	    Stream #0:0(eng): Video: h264 (Constrained Baseline) (avc1 / 0x31637661), yuv420p(tv, bt709), 1080x1920, 4499 kb/s, SAR 1:1 DAR 9:16, 19.01 fps, 90k tbr
//	    Stream #0:1(eng): Audio: aac (LC) (mp4a / 0x6134706D), 22050 Hz, mono, fltp, 63 kb/s (default)
func ParseMediaInfo(sourcePath, probeText string) Info {
	info := Info{
		SourcePath:    sourcePath,
		AudioChannels: 2,
	}

	for _, line := range strings.Split(probeText, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Duration:"):
			parseDurationLine(line, &info)
		case strings.HasPrefix(line, "Input"):
			parseInputLine(line, &info)
		case strings.HasPrefix(line, "Stream") && strings.Contains(line, "Video:"):
			parseVideoLine(line, &info)
		case strings.HasPrefix(line, "Stream") && strings.Contains(line, "Audio:"):
			parseAudioLine(line, &info)
		}
	}

	return info
}

// parseDurationLine handles lines such as:
//
//	Duration: 00:02:22.86, start: 0.000000, bitrate: 4569 kb/s
//
// The last well-formed timestamp wins should the line repeat.
func parseDurationLine(line string, info *Info) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	value := strings.TrimSuffix(fields[1], ",")
	if ms, ok := ParseTimestamp(value); ok {
		info.DurationMs = ms
	}
}

// parseInputLine fixes the container from the demuxer list on the Input
// line. The first Input line wins; ffmpeg emits one per probed resource.
func parseInputLine(line string, info *Info) {
	if info.Container != "" {
		return
	}
	if container, ok := codecs.ContainerFromLine(line); ok {
		info.Container = container
	}
}

func parseVideoLine(line string, info *Info) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return
	}

	// "Stream #0:0(eng): Video: h264 (Constrained Baseline) ..." puts the
	// codec token in the fourth field.
	codec, _ := codecs.VideoCodecFromToken(strings.Trim(fields[3], ","))
	info.VideoCodec = codec

	if match := resolutionPattern.FindString(line); match != "" {
		info.VideoResolution = strings.TrimRight(match, " ,")
	}

	for _, segment := range strings.Split(line, ",") {
		segment = strings.TrimSpace(segment)
		if strings.Contains(segment, "kb/s") {
			info.VideoBitrateKbps = strings.TrimSpace(strings.ReplaceAll(segment, "kb/s", ""))
		}
		if strings.Contains(segment, "fps") {
			info.VideoFramerate = strings.TrimSpace(strings.ReplaceAll(segment, "fps", ""))
		}
	}
}

func parseAudioLine(line string, info *Info) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return
	}

	codec, _ := codecs.AudioCodecFromToken(strings.Trim(fields[3], ","))
	info.AudioCodec = codec

	for _, segment := range strings.Split(line, ",") {
		segment = strings.TrimSpace(segment)
		if strings.Contains(segment, "Hz") {
			info.AudioSampleRateHz = strings.TrimSpace(strings.ReplaceAll(segment, "Hz", ""))
		}
		if strings.Contains(segment, "kb/s") {
			bitrate := strings.TrimSpace(strings.ReplaceAll(segment, "kb/s", ""))
			bitrate = strings.TrimSpace(strings.ReplaceAll(bitrate, "(default)", ""))
			info.AudioBitrateKbps = bitrate
		}
		if strings.Contains(segment, "mono") {
			info.AudioChannels = 1
		}
	}
}
