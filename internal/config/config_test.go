package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"trackgen/internal/config"
)

func TestLoadDefaultConfigWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("TRACKGEN_OUTPUT_DIR", "")
	t.Setenv("TRACKGEN_DECODER", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "trackgen", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Output.BaseName != "TrackGen" {
		t.Fatalf("unexpected base name: %q", cfg.Output.BaseName)
	}
	if cfg.Output.Dir != "" {
		t.Fatalf("expected empty output dir by default, got %q", cfg.Output.Dir)
	}
	if len(cfg.Scan.Extensions) != 1 || cfg.Scan.Extensions[0] != ".ogg" {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	if cfg.Tracks.SoundPrefix != "Cassette" {
		t.Fatalf("unexpected sound prefix: %q", cfg.Tracks.SoundPrefix)
	}
	if cfg.Decoder.Backend != config.BackendVorbis {
		t.Fatalf("unexpected backend: %q", cfg.Decoder.Backend)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("TRACKGEN_OUTPUT_DIR", "")
	t.Setenv("TRACKGEN_DECODER", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "trackgen.toml")

	type payload struct {
		Output struct {
			Dir      string `toml:"dir"`
			BaseName string `toml:"base_name"`
		} `toml:"output"`
		Scan struct {
			Extensions []string `toml:"extensions"`
		} `toml:"scan"`
		Tracks struct {
			SoundPrefix string `toml:"sound_prefix"`
		} `toml:"tracks"`
		Decoder struct {
			Backend string `toml:"backend"`
		} `toml:"decoder"`
	}
	custom := payload{}
	custom.Output.Dir = filepath.Join(tempDir, "out")
	custom.Output.BaseName = " Radio "
	custom.Scan.Extensions = []string{"ogg", ".OGG", ".ogg", " "}
	custom.Tracks.SoundPrefix = ""
	custom.Decoder.Backend = "FFprobe"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Output.Dir != filepath.Join(tempDir, "out") {
		t.Fatalf("unexpected output dir: %q", cfg.Output.Dir)
	}
	if cfg.Output.BaseName != "Radio" {
		t.Fatalf("expected trimmed base name, got %q", cfg.Output.BaseName)
	}
	if strings.Join(cfg.Scan.Extensions, ",") != ".ogg,.OGG" {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	if cfg.Tracks.SoundPrefix != "" {
		t.Fatalf("expected empty sound prefix to be kept, got %q", cfg.Tracks.SoundPrefix)
	}
	if cfg.Decoder.Backend != config.BackendFFprobe {
		t.Fatalf("unexpected backend: %q", cfg.Decoder.Backend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TRACKGEN_DECODER", "")
	configPath := filepath.Join(t.TempDir(), "trackgen.toml")
	if err := os.WriteFile(configPath, []byte("[decoder]\nbackend = \"wav\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "decoder.backend") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "trackgen.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nbase = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error for unknown key")
	}
}

func TestLoggingOutputPathsAreNormalized(t *testing.T) {
	t.Setenv("TRACKGEN_OUTPUT_DIR", "")
	t.Setenv("TRACKGEN_DECODER", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	configPath := filepath.Join(t.TempDir(), "trackgen.toml")
	raw := "[logging]\noutput_paths = [\" stderr \", \"\", \"~/logs/trackgen.log\"]\ndevelopment = true\n"
	if err := os.WriteFile(configPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"stderr", filepath.Join(home, "logs", "trackgen.log")}
	if len(cfg.Logging.OutputPaths) != len(want) {
		t.Fatalf("unexpected output paths: got %v want %v", cfg.Logging.OutputPaths, want)
	}
	for i := range want {
		if cfg.Logging.OutputPaths[i] != want[i] {
			t.Fatalf("output path %d: got %q want %q", i, cfg.Logging.OutputPaths[i], want[i])
		}
	}
	if !cfg.Logging.Development {
		t.Fatal("expected development logging to be enabled")
	}
}

func TestEnvOverrides(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("TRACKGEN_OUTPUT_DIR", outDir)
	t.Setenv("TRACKGEN_DECODER", "ffprobe")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Output.Dir != outDir {
		t.Fatalf("expected output dir from env, got %q", cfg.Output.Dir)
	}
	dir, err := cfg.OutputDir()
	if err != nil || dir != outDir {
		t.Fatalf("OutputDir() = %q, %v", dir, err)
	}
	if cfg.Decoder.Backend != config.BackendFFprobe {
		t.Fatalf("expected backend from env, got %q", cfg.Decoder.Backend)
	}
}

func TestValidateBaseName(t *testing.T) {
	cfg := config.Default()
	cfg.Output.BaseName = "nested/name"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for base name with separator")
	}
	cfg.Output.BaseName = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty base name")
	}
}

func TestOutputDirFallsBackToExecutable(t *testing.T) {
	cfg := config.Default()
	dir, err := cfg.OutputDir()
	if err != nil {
		t.Fatalf("OutputDir returned error: %v", err)
	}
	want, err := config.ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir returned error: %v", err)
	}
	if dir != want {
		t.Fatalf("unexpected output dir: got %q want %q", dir, want)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("TRACKGEN_OUTPUT_DIR", "")
	t.Setenv("TRACKGEN_DECODER", "")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Output.BaseName != "TrackGen" {
		t.Fatalf("unexpected base name from sample: %q", cfg.Output.BaseName)
	}
}
