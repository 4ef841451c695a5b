// Package tracks renders track descriptors into the generated script.
//
// A Track pairs a sanitized name with its sound reference and duration. A
// Script accumulates track blocks in the order they are appended, beneath the
// fixed "Generated by TrackGen" header. Blocks are never sorted or
// de-duplicated; two files with the same sanitized name yield two blocks.
package tracks
