package discovery

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"trackgen/internal/logging"
)

// DefaultExtension is matched when Options.Extensions is empty.
const DefaultExtension = ".ogg"

var (
	// ErrNoInputs reports an empty argument list.
	ErrNoInputs = errors.New("no files provided")
	// ErrNoCandidates reports that resolution produced nothing to decode.
	ErrNoCandidates = errors.New("no files found")
)

// UnrecognizedPathError marks an input that is neither an explicit file
// reference nor an existing directory.
type UnrecognizedPathError struct {
	Path string
}

func (e *UnrecognizedPathError) Error() string {
	return "unrecognised path " + e.Path
}

// Options configures Resolve.
type Options struct {
	// Extensions are matched case-sensitively against file names found by
	// directory walks.
	Extensions []string
	Logger     *slog.Logger
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Candidates   []string
	Unrecognized []*UnrecognizedPathError
}

// Resolve expands inputs into candidate audio file paths, preserving input order.
//
// An input containing a period is taken as an explicit file and passed through
// without touching the filesystem. Any other input that exists is walked
// recursively in lexical order; matching files are emitted as the input joined
// with the slash-separated path relative to it. Remaining inputs are reported
// in Resolution.Unrecognized and skipped.
//
// ErrNoInputs is returned for an empty input list and ErrNoCandidates when
// nothing was resolved; the Resolution is still populated in the latter case.
func Resolve(inputs []string, opts Options) (Resolution, error) {
	var res Resolution
	if len(inputs) == 0 {
		return res, ErrNoInputs
	}

	logger := logging.NewComponentLogger(opts.Logger, "discovery")
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}

	for _, input := range inputs {
		switch {
		case strings.Contains(input, "."):
			res.Candidates = append(res.Candidates, input)
		case exists(input):
			found := walk(input, exts, logger)
			logger.Debug("walked directory",
				logging.String(logging.FieldPath, input),
				logging.Int("matches", len(found)),
			)
			res.Candidates = append(res.Candidates, found...)
		default:
			res.Unrecognized = append(res.Unrecognized, &UnrecognizedPathError{Path: input})
		}
	}

	if len(res.Candidates) == 0 {
		return res, ErrNoCandidates
	}
	return res, nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func walk(root string, exts []string, logger *slog.Logger) []string {
	var found []string
	prefix := filepath.ToSlash(root)
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable path",
				logging.String(logging.FieldPath, p),
				logging.Error(err),
			)
			if d != nil && d.IsDir() && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasExtension(d.Name(), exts) {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		switch {
		case relErr != nil:
			return nil
		case rel == ".":
			// root itself is a matching file
			found = append(found, root)
		default:
			found = append(found, path.Join(prefix, filepath.ToSlash(rel)))
		}
		return nil
	})
	return found
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
