// Package testsupport provides helpers shared by trackgen tests: temp file
// trees, a canned-metadata decoder, and ready-made configurations.
package testsupport
