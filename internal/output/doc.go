// Package output writes the generated track script to disk.
//
// The destination directory is always supplied by the caller; the CLI
// resolves it from configuration or the executable's location. Existing
// scripts are truncated and overwritten.
package output
