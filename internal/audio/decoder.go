package audio

import (
	"context"
	"fmt"
	"strings"

	"trackgen/internal/config"
)

// Metadata is what a Decoder exposes about one audio file.
type Metadata struct {
	// BufferLength is the byte length of the fully decoded 16-bit
	// interleaved PCM buffer: frames * channels * 2.
	BufferLength int64
	// Frequency is the sample rate in Hz.
	Frequency int
	Channels  int
}

// Decoder opens an audio file and reports its decoded metadata.
// Implementations must release every handle they open before returning.
type Decoder interface {
	Open(ctx context.Context, path string) (Metadata, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, path string) (Metadata, error)

func (f DecoderFunc) Open(ctx context.Context, path string) (Metadata, error) {
	return f(ctx, path)
}

// DecodeError reports a file that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecoder returns the decoder for a configured backend name.
func NewDecoder(backend, ffprobeBinary string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case config.BackendVorbis, "":
		return VorbisDecoder{}, nil
	case config.BackendFFprobe:
		return FFprobeDecoder{Binary: ffprobeBinary}, nil
	default:
		return nil, fmt.Errorf("audio decoder: unsupported backend %q", backend)
	}
}
