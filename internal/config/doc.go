// Package config loads, normalizes, and validates trackgen configuration.
//
// Configuration lives in a TOML file (default ~/.config/trackgen/config.toml,
// falling back to ./trackgen.toml). A missing file is not an error: every
// field has a default that reproduces the classic TrackGen behavior, writing
// TrackGen_tracks.txt next to the executable with Cassette-prefixed sound
// references for every .ogg file found.
//
// Load returns the parsed config together with the resolved path and whether
// the file existed, so commands can explain where values came from.
package config
