package testsupport

import (
	"context"
	"errors"
	"path/filepath"

	"trackgen/internal/audio"
)

// FakeDecoder serves canned metadata keyed by slash-separated path. Paths
// listed in neither map fail with a DecodeError.
type FakeDecoder struct {
	Files    map[string]audio.Metadata
	Failures map[string]error
	Calls    []string
}

// Open implements audio.Decoder.
func (d *FakeDecoder) Open(_ context.Context, path string) (audio.Metadata, error) {
	key := filepath.ToSlash(path)
	d.Calls = append(d.Calls, key)
	if err, ok := d.Failures[key]; ok {
		return audio.Metadata{}, &audio.DecodeError{Path: path, Err: err}
	}
	if meta, ok := d.Files[key]; ok {
		return meta, nil
	}
	return audio.Metadata{}, &audio.DecodeError{Path: path, Err: errors.New("not an Ogg Vorbis stream")}
}

// HalfSecondStereo is 0.5 s of 44.1 kHz stereo: 88200 / 44100 / 2 / 2.
var HalfSecondStereo = audio.Metadata{BufferLength: 88200, Frequency: 44100, Channels: 2}
