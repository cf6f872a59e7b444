// Package ffmpeg owns the process plumbing around the ffmpeg binary:
// resolving which binary to run, executing probe and capability commands,
// and serializing invocations through a file lock so concurrent callers do
// not stack ffmpeg processes on top of each other.
//
// The diagnostic text it returns is parsed by internal/media/probe; this
// package never interprets ffmpeg output itself.
package ffmpeg
