package generator

import (
	"trackgen/internal/tracks"
)

// TrackEntry is a generated track together with the file it came from.
type TrackEntry struct {
	tracks.Track
	Source string `json:"source"`
}

// Failure records a candidate that could not be decoded.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Report summarizes one generation run.
type Report struct {
	RunID        string        `json:"run_id"`
	Candidates   int           `json:"candidates"`
	Unrecognized []string      `json:"unrecognized,omitempty"`
	Tracks       []TrackEntry  `json:"tracks"`
	Failures     []Failure     `json:"failures,omitempty"`
	OutputPath   string        `json:"output_path,omitempty"`
	Script       tracks.Script `json:"-"`
}

// Processed reports the number of candidates that produced a track.
func (r Report) Processed() int {
	return len(r.Tracks)
}

// Skipped reports the number of candidates that failed to decode.
func (r Report) Skipped() int {
	return len(r.Failures)
}

func (r *Report) recordFailure(path string, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Error: cause(err).Error()})
}
