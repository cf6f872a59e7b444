package probe

import (
	"reflect"
	"testing"

	"mediascan/internal/media/codecs"
)

const exampleProbeOutput = `Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'ExampleVideo.mp4':
  Metadata:
    major_brand     : mp42
    minor_version   : 0
    compatible_brands: isommp42
    creation_time   : 2018-01-02 00:09:32
    com.android.version: 7.1.2
  Duration: 00:02:22.86, start: 0.000000, bitrate: 4569 kb/s
    Stream #0:0(eng): Video: h264 (Constrained Baseline) (avc1 / 0x31637661), yuv420p(tv, bt709), 1080x1920, 4499 kb/s, SAR 1:1 DAR 9:16, 19.01 fps, 90k tbr, 90k tbn, 180k tbc (default)
    Metadata:
      creation_time   : 2018-01-02 00:09:32
      handler_name    : VideoHandle
    Stream #0:1(eng): Audio: aac (LC) (mp4a / 0x6134706D), 22050 Hz, mono, fltp, 63 kb/s (default)
    Metadata:
      creation_time   : 2018-01-02 00:09:32
      handler_name    : SoundHandle
`

func TestParseMediaInfoFullProbeOutput(t *testing.T) {
	info := ParseMediaInfo("/videos/ExampleVideo.mp4", exampleProbeOutput)

	if info.SourcePath != "/videos/ExampleVideo.mp4" {
		t.Fatalf("unexpected source path %q", info.SourcePath)
	}
	if info.DurationMs != 142860 {
		t.Fatalf("expected duration 142860 ms, got %d", info.DurationMs)
	}
	if info.Container != codecs.ContainerMP4 {
		t.Fatalf("expected mp4 container, got %q", info.Container)
	}
	if info.VideoCodec != codecs.VideoH264 {
		t.Fatalf("expected h264 video codec, got %q", info.VideoCodec)
	}
	if info.VideoResolution != "1080x1920" {
		t.Fatalf("expected resolution 1080x1920, got %q", info.VideoResolution)
	}
	if info.VideoBitrateKbps != "4499" {
		t.Fatalf("expected video bitrate 4499, got %q", info.VideoBitrateKbps)
	}
	if info.VideoFramerate != "19.01" {
		t.Fatalf("expected framerate 19.01, got %q", info.VideoFramerate)
	}
	if info.AudioCodec != codecs.AudioAAC {
		t.Fatalf("expected aac audio codec, got %q", info.AudioCodec)
	}
	if info.AudioSampleRateHz != "22050" {
		t.Fatalf("expected sample rate 22050, got %q", info.AudioSampleRateHz)
	}
	if info.AudioBitrateKbps != "63" {
		t.Fatalf("expected audio bitrate 63, got %q", info.AudioBitrateKbps)
	}
	if info.AudioChannels != 1 {
		t.Fatalf("expected mono audio, got %d channels", info.AudioChannels)
	}
	if !info.HasVideo() || !info.HasAudio() {
		t.Fatal("expected both streams to be recognized")
	}
}

func TestParseMediaInfoIsIdempotent(t *testing.T) {
	first := ParseMediaInfo("a.mp4", exampleProbeOutput)
	second := ParseMediaInfo("a.mp4", exampleProbeOutput)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestParseMediaInfoEmptyAndUnrelatedInput(t *testing.T) {
	for _, text := range []string{
		"",
		"\n\n\n",
		"ffmpeg version 3.4 Copyright (c) 2000-2017 the FFmpeg developers\nbuilt with gcc\n",
		"complete garbage \x00 with control bytes",
	} {
		info := ParseMediaInfo("x", text)
		if info.DurationMs != 0 {
			t.Fatalf("expected zero duration for %q, got %d", text, info.DurationMs)
		}
		if info.Container != "" || info.VideoCodec != "" || info.AudioCodec != "" {
			t.Fatalf("expected absent enums for %q, got %+v", text, info)
		}
		if info.VideoResolution != "" || info.VideoBitrateKbps != "" || info.VideoFramerate != "" {
			t.Fatalf("expected absent video fields for %q, got %+v", text, info)
		}
		if info.AudioSampleRateHz != "" || info.AudioBitrateKbps != "" {
			t.Fatalf("expected absent audio fields for %q, got %+v", text, info)
		}
		if info.AudioChannels != 2 {
			t.Fatalf("expected default stereo for %q, got %d", text, info.AudioChannels)
		}
		if info.HasVideo() || info.HasAudio() {
			t.Fatalf("expected no streams for %q", text)
		}
	}
}

func TestParseMediaInfoStereoWithoutMonoMarker(t *testing.T) {
	text := "Stream #0:1: Audio: aac (LC), 48000 Hz, 5.1, fltp, 384 kb/s\n"
	info := ParseMediaInfo("x", text)
	if info.AudioChannels != 2 {
		t.Fatalf("expected default stereo, got %d channels", info.AudioChannels)
	}
	if info.AudioCodec != codecs.AudioAAC {
		t.Fatalf("expected aac, got %q", info.AudioCodec)
	}
	if info.AudioSampleRateHz != "48000" {
		t.Fatalf("expected 48000 Hz, got %q", info.AudioSampleRateHz)
	}
	if info.AudioBitrateKbps != "384" {
		t.Fatalf("expected 384 kb/s, got %q", info.AudioBitrateKbps)
	}
}

func TestParseMediaInfoResolutionIgnoresHexCodecTags(t *testing.T) {
	// The codec tag contains digits around an 'x' but is not followed by a
	// space or comma, so it must not be reported as a resolution.
	text := "Stream #0:0: Video: h264 (avc1 / 0x31637661), yuv420p\n"
	info := ParseMediaInfo("x", text)
	if info.VideoResolution != "" {
		t.Fatalf("expected no resolution, got %q", info.VideoResolution)
	}
	if info.VideoCodec != codecs.VideoH264 {
		t.Fatalf("expected h264, got %q", info.VideoCodec)
	}
}

func TestParseMediaInfoResolutionTrailingDelimiters(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Stream #0:0: Video: h264 (Main), yuv420p, 640x360 [SAR 1:1 DAR 16:9], 25 fps, 25 tbr", "640x360"},
		{"Stream #0:0: Video: mpeg4 (Simple Profile), yuv420p, 1920x1080, 30 fps", "1920x1080"},
	}
	for _, tc := range cases {
		info := ParseMediaInfo("x", tc.line+"\n")
		if info.VideoResolution != tc.want {
			t.Fatalf("%q: expected resolution %q, got %q", tc.line, tc.want, info.VideoResolution)
		}
	}
}

func TestParseMediaInfoUnrecognizedCodecsStayAbsent(t *testing.T) {
	text := `Input #0, wtv, from 'show.wtv':
  Duration: 00:30:00.00, start: 0.000000, bitrate: 6000 kb/s
    Stream #0:0: Video: vc1 (Advanced), yuv420p, 1280x720, 5500 kb/s, 29.97 fps
    Stream #0:1: Audio: ac3, 48000 Hz, stereo, fltp, 192 kb/s
`
	info := ParseMediaInfo("show.wtv", text)
	if info.Container != "" {
		t.Fatalf("expected absent container, got %q", info.Container)
	}
	if info.VideoCodec != "" {
		t.Fatalf("expected absent video codec, got %q", info.VideoCodec)
	}
	if info.AudioCodec != "" {
		t.Fatalf("expected absent audio codec, got %q", info.AudioCodec)
	}
	// Unit-bearing segments still parse even when the codecs are unknown.
	if info.DurationMs != 1800000 {
		t.Fatalf("expected 1800000 ms, got %d", info.DurationMs)
	}
	if info.VideoResolution != "1280x720" || info.VideoBitrateKbps != "5500" || info.VideoFramerate != "29.97" {
		t.Fatalf("unexpected video fields %+v", info)
	}
	if info.AudioSampleRateHz != "48000" || info.AudioBitrateKbps != "192" {
		t.Fatalf("unexpected audio fields %+v", info)
	}
}

func TestParseMediaInfoShortLinesAreSkipped(t *testing.T) {
	text := "Duration:\nInput\nStream Video:\nStream #0:1: Audio:\n"
	info := ParseMediaInfo("x", text)
	if info.DurationMs != 0 || info.VideoCodec != "" || info.AudioCodec != "" {
		t.Fatalf("expected short lines to be skipped, got %+v", info)
	}
}

func TestParseMediaInfoRepeatedDurationLastValidWins(t *testing.T) {
	text := "Duration: 00:00:10.00, start: 0.000000\nDuration: bogus\nDuration: 00:00:20.00, start: 0.000000\n"
	info := ParseMediaInfo("x", text)
	if info.DurationMs != 20000 {
		t.Fatalf("expected last valid duration 20000 ms, got %d", info.DurationMs)
	}
}

func TestParseMediaInfoRepeatedInputFirstContainerWins(t *testing.T) {
	text := "Input #0, avi, from 'a.avi':\nInput #1, matroska,webm, from 'b.mkv':\n"
	info := ParseMediaInfo("x", text)
	if info.Container != codecs.ContainerAVI {
		t.Fatalf("expected first container avi, got %q", info.Container)
	}
}
