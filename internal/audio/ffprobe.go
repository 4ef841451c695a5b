package audio

import (
	"context"
	"errors"
	"fmt"
	"math"

	"trackgen/internal/media/ffprobe"
)

// FFprobeDecoder reads metadata by running ffprobe. It accepts any container
// ffprobe understands and reconstructs the 16-bit PCM buffer length from the
// reported duration.
type FFprobeDecoder struct {
	Binary string
}

// Open inspects path with ffprobe.
func (d FFprobeDecoder) Open(ctx context.Context, path string) (Metadata, error) {
	result, err := ffprobe.Inspect(ctx, d.Binary, path)
	if err != nil {
		return Metadata{}, &DecodeError{Path: path, Err: err}
	}
	stream, ok := result.AudioStream()
	if !ok {
		return Metadata{}, &DecodeError{Path: path, Err: errors.New("no audio stream")}
	}
	rate := stream.SampleRateHz()
	if rate <= 0 || stream.Channels <= 0 {
		return Metadata{}, &DecodeError{Path: path, Err: errors.New("missing sample rate or channel count")}
	}
	seconds := result.DurationSeconds(stream)
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return Metadata{}, &DecodeError{Path: path, Err: fmt.Errorf("invalid duration %v", seconds)}
	}
	frames := int64(math.Round(seconds * float64(rate)))
	return Metadata{
		BufferLength: frames * int64(stream.Channels) * 2,
		Frequency:    rate,
		Channels:     stream.Channels,
	}, nil
}
