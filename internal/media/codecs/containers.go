package codecs

import "strings"

// Container identifies a media container format by its ffmpeg token.
type Container string

const (
	ContainerMP4  Container = "mp4"
	ContainerMKV  Container = "matroska"
	ContainerAVI  Container = "avi"
	ContainerFLV  Container = "flv"
	ContainerGIF  Container = "gif"
	ContainerMP3  Container = "mp3"
	ContainerOGG  Container = "ogg"
	ContainerFLAC Container = "flac"
	ContainerWAV  Container = "wav"
)

// containers fixes the enumeration order used for line matching and
// capability scans.
var containers = []Container{
	ContainerMP4,
	ContainerMKV,
	ContainerAVI,
	ContainerFLV,
	ContainerGIF,
	ContainerMP3,
	ContainerOGG,
	ContainerFLAC,
	ContainerWAV,
}

// Containers returns all known containers in enumeration order.
func Containers() []Container {
	out := make([]Container, len(containers))
	copy(out, containers)
	return out
}

// Token returns the ffmpeg name for the container.
func (c Container) Token() string {
	return string(c)
}

// Extension returns the customary file extension for the container.
func (c Container) Extension() string {
	switch c {
	case ContainerMKV:
		return "mkv"
	default:
		return string(c)
	}
}

// Description returns a short human-readable name for the container.
func (c Container) Description() string {
	switch c {
	case ContainerMP4:
		return "MPEG-4 Part 14"
	case ContainerMKV:
		return "Matroska"
	case ContainerAVI:
		return "Audio Video Interleaved"
	case ContainerFLV:
		return "Flash Video"
	case ContainerGIF:
		return "Animated GIF"
	case ContainerMP3:
		return "MPEG audio layer 3"
	case ContainerOGG:
		return "Ogg"
	case ContainerFLAC:
		return "Free Lossless Audio Codec"
	case ContainerWAV:
		return "Waveform Audio"
	default:
		return string(c)
	}
}

// ContainerFromToken resolves an exact container token.
func ContainerFromToken(token string) (Container, bool) {
	for _, container := range containers {
		if container.Token() == token {
			return container, true
		}
	}
	return "", false
}

// ContainerFromLine resolves the first container whose token appears as a
// substring of the line, in enumeration order. ffmpeg Input lines list the
// matched demuxer names densely ("mov,mp4,m4a,3gp,3g2,mj2"), so containment
// rather than field equality is the right test.
func ContainerFromLine(line string) (Container, bool) {
	for _, container := range containers {
		if strings.Contains(line, container.Token()) {
			return container, true
		}
	}
	return "", false
}
