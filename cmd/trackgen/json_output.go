package main

import (
	"encoding/json"
	"io"

	"trackgen/internal/generator"
)

// reportJSON adds the derived counters to the run report so scripted callers
// need not recount the slices.
type reportJSON struct {
	generator.Report
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

func writeReportJSON(w io.Writer, report generator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{
		Report:    report,
		Processed: report.Processed(),
		Skipped:   report.Skipped(),
	})
}
