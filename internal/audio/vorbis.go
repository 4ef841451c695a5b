package audio

import (
	"context"
	"errors"
	"os"

	"github.com/faiface/beep/vorbis"
)

// VorbisDecoder reads Ogg Vorbis files in-process.
type VorbisDecoder struct{}

// Open decodes the Vorbis headers of path and sizes its PCM buffer.
func (VorbisDecoder) Open(_ context.Context, path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, &DecodeError{Path: path, Err: err}
	}

	stream, format, err := vorbis.Decode(f)
	if err != nil {
		_ = f.Close()
		return Metadata{}, &DecodeError{Path: path, Err: err}
	}
	// closes f as well
	defer stream.Close()

	if format.SampleRate <= 0 || format.NumChannels <= 0 {
		return Metadata{}, &DecodeError{Path: path, Err: errors.New("missing sample rate or channel count")}
	}
	precision := format.Precision
	if precision <= 0 {
		precision = 2
	}

	frames := int64(stream.Len())
	if frames < 0 {
		return Metadata{}, &DecodeError{Path: path, Err: errors.New("stream length unknown")}
	}
	return Metadata{
		BufferLength: frames * int64(format.NumChannels) * int64(precision),
		Frequency:    int(format.SampleRate),
		Channels:     format.NumChannels,
	}, nil
}
