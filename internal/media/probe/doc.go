// Package probe turns ffmpeg's human-readable diagnostic output into typed
// records.
//
// This package has no process-management dependencies and could be extracted
// as a standalone library: it consumes text the internal/ffmpeg package (or a
// test) obtained elsewhere.
//
// Key types:
//   - Info: best-effort media metadata parsed from `ffmpeg -i` output
//
// Primary entry points:
//   - ParseMediaInfo: tolerant line scanner over probe output
//   - ParseSupportedContainers: capability scan over `ffmpeg -formats` output
//   - ParseTimestamp: "HH:MM:SS.ss" clock string to elapsed milliseconds
//
// ffmpeg's banner format has drifted across releases, so the scanners accept
// missing, reordered, or unrecognized fields and degrade to absent values
// instead of failing.
package probe
