package generator_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"trackgen/internal/audio"
	"trackgen/internal/discovery"
	"trackgen/internal/generator"
	"trackgen/internal/testsupport"
	"trackgen/internal/tracks"
)

func newGenerator(dec audio.Decoder, out io.Writer) *generator.Generator {
	return generator.New(dec, generator.Options{
		Extensions:  []string{".ogg"},
		SoundPrefix: tracks.DefaultSoundPrefix,
		Out:         out,
	})
}

func TestRunWithoutInputs(t *testing.T) {
	var out bytes.Buffer
	report, err := newGenerator(&testsupport.FakeDecoder{}, &out).Run(context.Background(), nil)
	if !errors.Is(err, discovery.ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs, got %v", err)
	}
	if out.String() != "No files were provided\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if report.Script.Len() != 0 {
		t.Fatalf("expected empty script, got %d blocks", report.Script.Len())
	}
}

func TestRunUnrecognizedPath(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	report, err := newGenerator(&testsupport.FakeDecoder{}, &out).Run(context.Background(), []string{"nonexistent/"})
	if !errors.Is(err, discovery.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	want := "Unrecognised path nonexistent/\nNo files were found\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), want)
	}
	if len(report.Unrecognized) != 1 || report.Unrecognized[0] != "nonexistent/" {
		t.Fatalf("unexpected unrecognized list %v", report.Unrecognized)
	}
}

func TestRunSingleExplicitFile(t *testing.T) {
	dec := &testsupport.FakeDecoder{Files: map[string]audio.Metadata{
		"clip.ogg": testsupport.HalfSecondStereo,
	}}
	var out bytes.Buffer
	report, err := newGenerator(dec, &out).Run(context.Background(), []string{"clip.ogg"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := tracks.Header + "track clip {\n    sound = Cassetteclip,\n    duration = 0.5,\n}\n\n"
	if report.Script.String() != want {
		t.Fatalf("unexpected script:\n got %q\nwant %q", report.Script.String(), want)
	}
	if out.String() != "Processed clip.ogg\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if report.Processed() != 1 || report.Skipped() != 0 || report.Candidates != 1 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	if report.Tracks[0].Source != "clip.ogg" || report.Tracks[0].Duration != 0.5 {
		t.Fatalf("unexpected track entry %+v", report.Tracks[0])
	}
	if report.RunID == "" {
		t.Fatal("expected run id")
	}
}

func TestRunDirectoryWithCorruptFile(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	testsupport.WriteFiles(t, base, "dir/corrupt.ogg", "dir/good.ogg", "dir/cover.png")

	dec := &testsupport.FakeDecoder{
		Files:    map[string]audio.Metadata{"dir/good.ogg": testsupport.HalfSecondStereo},
		Failures: map[string]error{"dir/corrupt.ogg": errors.New("invalid Ogg capture pattern")},
	}
	var out bytes.Buffer
	report, err := newGenerator(dec, &out).Run(context.Background(), []string{"dir/"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Script.Len() != 1 {
		t.Fatalf("expected exactly one block, got %d", report.Script.Len())
	}
	if strings.Count(report.Script.String(), "track ") != 1 {
		t.Fatalf("unexpected script %q", report.Script.String())
	}
	wantOut := "Unable to open file dir/corrupt.ogg, skipping\n" +
		"Decode error: invalid Ogg capture pattern\n" +
		"Processed dir/good.ogg\n" +
		"Skipped 1 of 2 files\n"
	if out.String() != wantOut {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), wantOut)
	}
	if report.Skipped() != report.Candidates-report.Processed() {
		t.Fatalf("skip counter mismatch: %+v", report)
	}
	if len(report.Failures) != 1 || report.Failures[0].Error != "invalid Ogg capture pattern" {
		t.Fatalf("unexpected failures %+v", report.Failures)
	}
}

func TestRunSanitizesTrackNames(t *testing.T) {
	dec := &testsupport.FakeDecoder{Files: map[string]audio.Metadata{
		"my file-1.ogg": testsupport.HalfSecondStereo,
	}}
	report, err := newGenerator(dec, nil).Run(context.Background(), []string{"my file-1.ogg"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Tracks[0].Name != "myfile1" {
		t.Fatalf("unexpected track name %q", report.Tracks[0].Name)
	}
	if !strings.Contains(report.Script.String(), "track myfile1 {\n    sound = Cassettemyfile1,\n") {
		t.Fatalf("unexpected script %q", report.Script.String())
	}
}

func TestRunKeepsInputOrderAndDuplicates(t *testing.T) {
	dec := &testsupport.FakeDecoder{Files: map[string]audio.Metadata{
		"b/theme.ogg": {BufferLength: 176400, Frequency: 44100, Channels: 2},
		"a/theme.ogg": testsupport.HalfSecondStereo,
	}}
	report, err := newGenerator(dec, nil).Run(context.Background(), []string{"b/theme.ogg", "a/theme.ogg"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	script := report.Script.String()
	first := strings.Index(script, "duration = 1.0,")
	second := strings.Index(script, "duration = 0.5,")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("blocks not in input order: %q", script)
	}
	if strings.Count(script, "track theme {") != 2 {
		t.Fatalf("expected duplicate names to be kept: %q", script)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	testsupport.WriteFiles(t, base, "music/a.ogg", "music/b.ogg", "music/nested/c.ogg")
	dec := &testsupport.FakeDecoder{Files: map[string]audio.Metadata{
		"music/a.ogg":        {BufferLength: 123457, Frequency: 44100, Channels: 2},
		"music/b.ogg":        {BufferLength: 96000, Frequency: 48000, Channels: 1},
		"music/nested/c.ogg": testsupport.HalfSecondStereo,
	}}

	first, err := newGenerator(dec, nil).Run(context.Background(), []string{"music"})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := newGenerator(dec, nil).Run(context.Background(), []string{"music"})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.Script.String() != second.Script.String() {
		t.Fatalf("scripts differ between runs:\n%q\n%q", first.Script.String(), second.Script.String())
	}
	if first.Script.Len() != 3 {
		t.Fatalf("expected 3 blocks, got %d", first.Script.Len())
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	dec := &testsupport.FakeDecoder{Files: map[string]audio.Metadata{
		"a.ogg": testsupport.HalfSecondStereo,
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGenerator(dec, nil).Run(ctx, []string{"a.ogg"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(dec.Calls) != 0 {
		t.Fatalf("decoder must not be called after cancellation, got %v", dec.Calls)
	}
}
