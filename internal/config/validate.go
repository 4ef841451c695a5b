package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateTracks(); err != nil {
		return err
	}
	if err := c.validateDecoder(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.BaseName == "" {
		return errors.New("output.base_name must be set")
	}
	if strings.ContainsAny(c.Output.BaseName, `/\`) {
		return fmt.Errorf("output.base_name %q must not contain path separators", c.Output.BaseName)
	}
	return nil
}

func (c *Config) validateTracks() error {
	if strings.ContainsAny(c.Tracks.SoundPrefix, " \t\r\n,{}") {
		return fmt.Errorf("tracks.sound_prefix %q must not contain whitespace, commas or braces", c.Tracks.SoundPrefix)
	}
	return nil
}

func (c *Config) validateDecoder() error {
	switch c.Decoder.Backend {
	case BackendVorbis, BackendFFprobe:
		return nil
	default:
		return fmt.Errorf("decoder.backend must be %q or %q, got %q", BackendVorbis, BackendFFprobe, c.Decoder.Backend)
	}
}
