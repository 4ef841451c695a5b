// Package textutil turns audio file paths into track script identifiers.
package textutil
