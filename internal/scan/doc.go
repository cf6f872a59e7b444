// Package scan wires the ffmpeg runner, the probe parsers, and the result
// cache into the operations the CLI exposes.
package scan
