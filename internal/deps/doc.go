// Package deps checks that external binaries trackgen can call are installed.
package deps
