package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"trackgen/internal/audio"
	"trackgen/internal/discovery"
	"trackgen/internal/logging"
	"trackgen/internal/textutil"
	"trackgen/internal/tracks"
)

// Options configures a Generator.
type Options struct {
	Extensions  []string
	SoundPrefix string
	Logger      *slog.Logger
	// Out receives the human-readable progress lines. Nil discards them.
	Out io.Writer
}

// Generator turns a list of input paths into a track script.
type Generator struct {
	decoder     audio.Decoder
	extensions  []string
	soundPrefix string
	logger      *slog.Logger
	out         io.Writer
}

// New returns a Generator that decodes candidates with dec.
func New(dec audio.Decoder, opts Options) *Generator {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		decoder:     dec,
		extensions:  append([]string(nil), opts.Extensions...),
		soundPrefix: opts.SoundPrefix,
		logger:      logging.NewComponentLogger(opts.Logger, "generator"),
		out:         out,
	}
}

// Run resolves inputs, decodes every candidate in order and accumulates the
// resulting track blocks.
//
// Decode failures are reported and counted but never abort the run. The
// returned error is discovery.ErrNoInputs or discovery.ErrNoCandidates when
// there is nothing to generate, or the context error when ctx is cancelled
// between candidates.
func (g *Generator) Run(ctx context.Context, inputs []string) (Report, error) {
	report := Report{
		RunID:  uuid.NewString(),
		Script: tracks.NewScript(),
	}
	logger := g.logger.With(logging.String(logging.FieldRunID, report.RunID))

	res, err := discovery.Resolve(inputs, discovery.Options{Extensions: g.extensions, Logger: logger})
	for _, unrecognized := range res.Unrecognized {
		report.Unrecognized = append(report.Unrecognized, unrecognized.Path)
		g.printf("Unrecognised path %s\n", unrecognized.Path)
	}
	if err != nil {
		g.println(emptyRunMessage(err))
		logger.Info("nothing to generate", logging.Int("inputs", len(inputs)))
		return report, err
	}

	report.Candidates = len(res.Candidates)
	logger.Debug("resolved candidates", logging.Int("candidates", report.Candidates))

	for _, candidate := range res.Candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := audio.Extract(ctx, g.decoder, candidate)
		if !result.OK() {
			report.recordFailure(candidate, result.Err)
			g.printf("Unable to open file %s, skipping\n", candidate)
			g.printf("Decode error: %v\n", cause(result.Err))
			logger.Warn("skipping undecodable file",
				logging.String(logging.FieldPath, candidate),
				logging.Error(result.Err),
			)
			continue
		}

		track := tracks.New(textutil.TrackName(candidate), g.soundPrefix, result.Duration)
		report.Script = report.Script.Append(track)
		report.Tracks = append(report.Tracks, TrackEntry{Track: track, Source: candidate})
		g.printf("Processed %s\n", candidate)
		logger.Debug("processed file",
			logging.String(logging.FieldPath, candidate),
			logging.String("track", track.Name),
			logging.Float64("duration", track.Duration),
		)
	}

	if skipped := report.Skipped(); skipped > 0 {
		g.printf("Skipped %d of %d files\n", skipped, report.Candidates)
	}
	logger.Info("generation complete",
		logging.Int("processed", report.Processed()),
		logging.Int("skipped", report.Skipped()),
	)
	return report, nil
}

func (g *Generator) println(line string) {
	fmt.Fprintln(g.out, line)
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

// emptyRunMessage renders the early-exit errors of Resolve for the console.
func emptyRunMessage(err error) string {
	switch {
	case errors.Is(err, discovery.ErrNoInputs):
		return "No files were provided"
	case errors.Is(err, discovery.ErrNoCandidates):
		return "No files were found"
	default:
		return err.Error()
	}
}

// cause strips the DecodeError wrapper so the diagnostic shows only the
// decoder's own message.
func cause(err error) error {
	var decodeErr *audio.DecodeError
	if errors.As(err, &decodeErr) && decodeErr.Err != nil {
		return decodeErr.Err
	}
	return err
}
