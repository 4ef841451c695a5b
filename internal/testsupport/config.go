package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"trackgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose output directory is a unique
// temp directory, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Dir = filepath.Join(base, "out")
	if err := os.MkdirAll(cfgVal.Output.Dir, 0o755); err != nil {
		t.Fatalf("mkdir output dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithSoundPrefix overrides the sound reference prefix.
func WithSoundPrefix(prefix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tracks.SoundPrefix = prefix
	}
}

// WithStubbedFFprobe writes an ffprobe stand-in that prints payload and
// selects the ffprobe backend with it.
func WithStubbedFFprobe(payload string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		jsonPath := filepath.Join(binDir, "ffprobe.json")
		if err := os.WriteFile(jsonPath, []byte(payload), 0o644); err != nil {
			b.t.Fatalf("write ffprobe payload: %v", err)
		}
		target := filepath.Join(binDir, "ffprobe")
		script := []byte("#!/bin/sh\ncat " + jsonPath + "\n")
		if err := os.WriteFile(target, script, 0o755); err != nil {
			b.t.Fatalf("write ffprobe stub: %v", err)
		}
		b.cfg.Decoder.Backend = config.BackendFFprobe
		b.cfg.Decoder.FFprobeBinary = target
	}
}
