// Package main hosts the trackgen CLI entrypoint.
//
// The root command is the generator itself: every positional argument is a
// file or directory, and the resulting track script is written to
// <base_name>_tracks.txt next to the executable unless configured otherwise.
// Auxiliary commands scaffold and validate configuration and check external
// dependencies.
package main
