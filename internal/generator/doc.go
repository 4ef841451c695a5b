// Package generator runs the track generation pipeline.
//
// A run resolves the input paths into candidate files, extracts each
// candidate's duration through an audio.Decoder, and appends one track block
// per decoded file to a tracks.Script. Every step is sequential and each
// candidate's file handles are released before the next one is opened.
//
// Progress lines mirror the classic TrackGen console output:
//
//	Unrecognised path <input>
//	No files were provided / No files were found
//	Unable to open file <path>, skipping
//	Decode error: <decoder message>
//	Processed <path>
//	Skipped <n> of <total> files
//
// Writing the script is left to the caller (see package output) so a failed
// write can be reported without re-running the decode pass.
package generator
