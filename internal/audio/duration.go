package audio

import (
	"context"
	"errors"
	"fmt"
)

// Result is the outcome of extracting one candidate: either a duration or a
// DecodeError in Err.
type Result struct {
	Path     string
	Metadata Metadata
	Duration float64
	Err      error
}

// OK reports whether the candidate produced a duration.
func (r Result) OK() bool {
	return r.Err == nil
}

// Duration converts decoder metadata to seconds.
//
// The trailing division by two converts the 16-bit PCM byte count into
// samples. Consumers of the generated script depend on this exact value.
func Duration(m Metadata) (float64, error) {
	if m.Frequency <= 0 {
		return 0, fmt.Errorf("invalid sample frequency %d", m.Frequency)
	}
	if m.Channels <= 0 {
		return 0, fmt.Errorf("invalid channel count %d", m.Channels)
	}
	if m.BufferLength < 0 {
		return 0, fmt.Errorf("invalid buffer length %d", m.BufferLength)
	}
	return float64(m.BufferLength) / float64(m.Frequency) / float64(m.Channels) / 2, nil
}

// Extract opens path with d and computes its duration. Failures of any kind
// come back as a *DecodeError in Result.Err.
func Extract(ctx context.Context, d Decoder, path string) Result {
	res := Result{Path: path}
	meta, err := d.Open(ctx, path)
	if err != nil {
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			decodeErr = &DecodeError{Path: path, Err: err}
		}
		res.Err = decodeErr
		return res
	}
	res.Metadata = meta
	seconds, err := Duration(meta)
	if err != nil {
		res.Err = &DecodeError{Path: path, Err: err}
		return res
	}
	res.Duration = seconds
	return res
}
