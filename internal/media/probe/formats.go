package probe

import (
	"strings"

	"mediascan/internal/media/codecs"
)

// ParseSupportedContainers scans `ffmpeg -formats` output for the containers
// this tool knows about. The listing packs muxer names densely, so each
// known token is tested by substring containment against the whole text:
//
//	 DE avi             AVI (Audio Video Interleaved)
//	  E matroska        Matroska
//	  E mp4             MP4 (MPEG-4 Part 14)
//	 DE mp3             MP3 (MPEG audio layer 3)
//
// The result follows enumeration order, never contains duplicates, and may
// be empty.
func ParseSupportedContainers(formatsText string) []codecs.Container {
	var supported []codecs.Container
	for _, container := range codecs.Containers() {
		if strings.Contains(formatsText, container.Token()) {
			supported = append(supported, container)
		}
	}
	return supported
}
