package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mediascan/internal/scan"
)

type inspectView struct {
	Source        string `json:"source"`
	DurationMs    int64  `json:"duration_ms"`
	Container     string `json:"container,omitempty"`
	VideoCodec    string `json:"video_codec,omitempty"`
	Resolution    string `json:"video_resolution,omitempty"`
	VideoBitrate  string `json:"video_bitrate_kbps,omitempty"`
	Framerate     string `json:"video_framerate,omitempty"`
	AudioCodec    string `json:"audio_codec,omitempty"`
	SampleRate    string `json:"audio_sample_rate_hz,omitempty"`
	AudioBitrate  string `json:"audio_bitrate_kbps,omitempty"`
	AudioChannels int    `json:"audio_channels"`
	Cached        bool   `json:"cached"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <file> [file...]",
		Short: "Probe media files and report their metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScanner(func(scanner *scan.Scanner) error {
				if noCache {
					cfg, err := ctx.ensureConfig()
					if err != nil {
						return err
					}
					cfg.Cache.Enabled = false
				}

				views := make([]inspectView, 0, len(args))
				for _, path := range args {
					result, err := scanner.Inspect(cmd.Context(), path)
					if err != nil {
						return err
					}
					views = append(views, newInspectView(result))
				}

				if ctx.jsonOutput() {
					return writeJSON(cmd, views)
				}

				rows := make([][]string, 0, len(views))
				for _, view := range views {
					rows = append(rows, []string{
						view.Source,
						formatDuration(view.DurationMs),
						orDash(view.Container),
						formatVideo(view),
						formatAudio(view),
						cachedMarker(view.Cached),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Source", "Duration", "Container", "Video", "Audio", "Cached"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Probe even when a cached result exists")
	return cmd
}

func newInspectView(result scan.Result) inspectView {
	info := result.Info
	return inspectView{
		Source:        info.SourcePath,
		DurationMs:    info.DurationMs,
		Container:     info.Container.Token(),
		VideoCodec:    info.VideoCodec.Token(),
		Resolution:    info.VideoResolution,
		VideoBitrate:  info.VideoBitrateKbps,
		Framerate:     info.VideoFramerate,
		AudioCodec:    info.AudioCodec.Token(),
		SampleRate:    info.AudioSampleRateHz,
		AudioBitrate:  info.AudioBitrateKbps,
		AudioChannels: info.AudioChannels,
		Cached:        result.Cached,
	}
}

func formatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return (time.Duration(ms) * time.Millisecond).String()
}

func formatVideo(view inspectView) string {
	if view.VideoCodec == "" && view.Resolution == "" {
		return "-"
	}
	out := orDash(view.VideoCodec)
	if view.Resolution != "" {
		out += " " + view.Resolution
	}
	if view.VideoBitrate != "" {
		out += " " + view.VideoBitrate + " kb/s"
	}
	if view.Framerate != "" {
		out += " " + view.Framerate + " fps"
	}
	return out
}

func formatAudio(view inspectView) string {
	if view.AudioCodec == "" && view.SampleRate == "" {
		return "-"
	}
	out := orDash(view.AudioCodec)
	if view.SampleRate != "" {
		out += " " + view.SampleRate + " Hz"
	}
	out += fmt.Sprintf(" %dch", view.AudioChannels)
	if view.AudioBitrate != "" {
		out += " " + view.AudioBitrate + " kb/s"
	}
	return out
}

func cachedMarker(cached bool) string {
	if cached {
		return "yes"
	}
	return "no"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
