package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"trackgen/internal/discovery"
	"trackgen/internal/generator"
	"trackgen/internal/logging"
	"trackgen/internal/output"
	"trackgen/internal/tracks"
)

func runGenerate(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg := ctx.config
	stdout := cmd.OutOrStdout()

	// JSON goes to stdout alone; progress lines move to stderr.
	progress := stdout
	if ctx.flags.json {
		progress = cmd.ErrOrStderr()
	}
	logger := ctx.logger(cmd.ErrOrStderr())

	dec, err := ctx.newDecoder(cfg)
	if err != nil {
		return err
	}
	dir, err := cfg.OutputDir()
	if err != nil {
		return err
	}
	writer := output.New(dir, cfg.Output.BaseName)

	gen := generator.New(dec, generator.Options{
		Extensions:  cfg.Scan.Extensions,
		SoundPrefix: cfg.Tracks.SoundPrefix,
		Logger:      logger,
		Out:         progress,
	})

	report, err := gen.Run(cmd.Context(), args)
	if err != nil {
		if errors.Is(err, discovery.ErrNoInputs) || errors.Is(err, discovery.ErrNoCandidates) {
			return nil
		}
		return err
	}

	path, err := writer.Write(cmd.Context(), report.Script.Bytes())
	if err != nil {
		var writeErr *output.WriteError
		if errors.As(err, &writeErr) {
			fmt.Fprintln(progress, writeErr.Error())
			logger.Error("script write failed",
				logging.String(logging.FieldPath, writeErr.Path),
				logging.Error(writeErr.Unwrap()),
			)
			return &reportedError{err: err}
		}
		return err
	}
	report.OutputPath = path
	fmt.Fprintf(progress, "Writing %s\n", path)

	switch {
	case ctx.flags.json:
		return writeReportJSON(stdout, report)
	case ctx.flags.summary || isTerminal(stdout):
		if report.Processed() > 0 {
			fmt.Fprintln(stdout, renderTrackTable(report))
		}
	}
	return nil
}

var trackColumns = []tableColumn{
	{header: "Track", align: text.AlignLeft},
	{header: "Sound", align: text.AlignLeft},
	{header: "Duration (s)", align: text.AlignRight},
	{header: "Source", align: text.AlignLeft},
}

// renderTrackTable lists generated tracks with a footer totalling the
// playback time and noting skipped files.
func renderTrackTable(report generator.Report) string {
	rows := make([][]string, 0, len(report.Tracks))
	var total float64
	for _, entry := range report.Tracks {
		total += entry.Duration
		rows = append(rows, []string{entry.Name, entry.Sound, tracks.FormatDuration(entry.Duration), entry.Source})
	}
	footer := []string{fmt.Sprintf("%d tracks", report.Processed()), "", tracks.FormatDuration(total), ""}
	if skipped := report.Skipped(); skipped > 0 {
		footer[3] = fmt.Sprintf("%d skipped", skipped)
	}
	return renderTable(trackColumns, rows, footer)
}
