// Package audio extracts playback durations from audio files.
//
// Decoding itself is delegated: VorbisDecoder uses faiface/beep's Ogg Vorbis
// reader in-process and FFprobeDecoder asks an ffprobe binary. Both report
// Metadata in the same shape (PCM byte length, frequency, channels), and
// Duration turns that into seconds with a single fixed formula. Extract wraps
// the two steps into a Result so callers can count failures without treating
// them as control flow.
package audio
