package textutil

import (
	"path/filepath"
	"strings"
)

// trackNameReplacer strips characters the track script grammar rejects in identifiers.
var trackNameReplacer = strings.NewReplacer(
	" ", "",
	"-", "",
)

// SanitizeTrackName removes spaces and hyphens from name.
func SanitizeTrackName(name string) string {
	return trackNameReplacer.Replace(name)
}

// TrackName derives a track identifier from a file path: the final path
// element, cut at its first period, with spaces and hyphens removed.
//
//	"music/my file-1.ogg" -> "myfile1"
//	"a/b/intro.remix.ogg" -> "intro"
func TrackName(path string) string {
	base := filepath.Base(path)
	if stem, _, found := strings.Cut(base, "."); found {
		base = stem
	}
	return SanitizeTrackName(base)
}
