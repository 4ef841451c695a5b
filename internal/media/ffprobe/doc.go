// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: per-stream properties (codec, sample rate, channels, duration)
//   - Format: container-level metadata
//
// Inspect runs the binary; Parse decodes output captured elsewhere.
package ffprobe
