package tracks

import (
	"strconv"
	"strings"
)

// Header opens every generated script.
const Header = "/* Generated by TrackGen */\n\n"

// DefaultSoundPrefix is prepended to the track name to form the sound reference.
const DefaultSoundPrefix = "Cassette"

// Track describes one named entry of the generated script.
type Track struct {
	Name     string  `json:"name"`
	Sound    string  `json:"sound"`
	Duration float64 `json:"duration"`
}

// New builds a Track whose sound reference is prefix+name.
func New(name, prefix string, duration float64) Track {
	return Track{Name: name, Sound: prefix + name, Duration: duration}
}

// Block renders the track in script form, including the trailing blank line.
func (t Track) Block() string {
	var b strings.Builder
	b.WriteString("track ")
	b.WriteString(t.Name)
	b.WriteString(" {\n    sound = ")
	b.WriteString(t.Sound)
	b.WriteString(",\n    duration = ")
	b.WriteString(FormatDuration(t.Duration))
	b.WriteString(",\n}\n\n")
	return b.String()
}

// FormatDuration renders seconds as the shortest decimal that round-trips,
// keeping a ".0" suffix on integral values (120 -> "120.0").
func FormatDuration(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
