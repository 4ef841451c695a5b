package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"trackgen/internal/audio"
	"trackgen/internal/config"
	"trackgen/internal/logging"
)

type commandFlags struct {
	configPath  string
	outputDir   string
	baseName    string
	soundPrefix string
	decoder     string
	extensions  []string
	json        bool
	summary     bool
}

type commandContext struct {
	flags commandFlags

	// newDecoder is swapped out by tests to avoid real audio files.
	newDecoder func(cfg *config.Config) (audio.Decoder, error)

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{
		newDecoder: func(cfg *config.Config) (audio.Decoder, error) {
			return audio.NewDecoder(cfg.Decoder.Backend, cfg.FFprobeBinary())
		},
	}
}

// ensureConfig loads the configuration once and layers command-line flags on top.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("output-dir") {
		dir, err := config.ExpandPath(strings.TrimSpace(c.flags.outputDir))
		if err != nil {
			return err
		}
		cfg.Output.Dir = dir
	}
	if changed("name") {
		cfg.Output.BaseName = strings.TrimSpace(c.flags.baseName)
	}
	if changed("sound-prefix") {
		cfg.Tracks.SoundPrefix = c.flags.soundPrefix
	}
	if changed("decoder") {
		cfg.Decoder.Backend = strings.ToLower(strings.TrimSpace(c.flags.decoder))
	}
	if changed("ext") {
		cfg.Scan.Extensions = normalizeExtensions(c.flags.extensions)
	}
	return cfg.Validate()
}

func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		out = append(out, v)
	}
	return out
}

func (c *commandContext) logger(w io.Writer) *slog.Logger {
	logger, err := logging.NewFromConfig(c.config, w)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
