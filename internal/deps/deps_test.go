package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"trackgen/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, executableName("present"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", results[2].Detail)
	}
}

func TestRequirementsFollowBackend(t *testing.T) {
	cfg := config.Default()
	reqs := Requirements(&cfg)
	if len(reqs) != 1 || reqs[0].Name != "ffprobe" {
		t.Fatalf("unexpected requirements %+v", reqs)
	}
	if !reqs[0].Optional {
		t.Fatal("ffprobe should be optional for the vorbis backend")
	}

	cfg.Decoder.Backend = config.BackendFFprobe
	cfg.Decoder.FFprobeBinary = "/opt/ffmpeg/bin/ffprobe"
	reqs = Requirements(&cfg)
	if reqs[0].Optional {
		t.Fatal("ffprobe should be required for the ffprobe backend")
	}
	if reqs[0].Command != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("unexpected command %q", reqs[0].Command)
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Name: "a", Available: false, Optional: true},
		{Name: "b", Available: false},
		{Name: "c", Available: true},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0].Name != "b" {
		t.Fatalf("unexpected missing list %+v", missing)
	}
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
