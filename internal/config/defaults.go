package config

const (
	defaultConfigPath    = "~/.config/trackgen/config.toml"
	projectConfigName    = "trackgen.toml"
	defaultBaseName      = "TrackGen"
	defaultExtension     = ".ogg"
	defaultSoundPrefix   = "Cassette"
	defaultBackend       = BackendVorbis
	defaultFFprobeBinary = "ffprobe"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Supported decoder backends.
const (
	BackendVorbis  = "vorbis"
	BackendFFprobe = "ffprobe"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			BaseName: defaultBaseName,
		},
		Scan: Scan{
			Extensions: []string{defaultExtension},
		},
		Tracks: Tracks{
			SoundPrefix: defaultSoundPrefix,
		},
		Decoder: Decoder{
			Backend:       defaultBackend,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
