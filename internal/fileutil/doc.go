// Package fileutil holds small file helpers shared by output code.
package fileutil
