// Package discovery expands command-line arguments into candidate audio files.
//
// Arguments that look like file names (they contain a period) are trusted
// as-is and only fail later, when the decoder opens them. Everything else must
// be an existing directory, which is walked recursively for files carrying one
// of the configured extensions.
package discovery
