package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"trackgen/internal/fileutil"
)

// DefaultBaseName names the script when no base name is configured.
const DefaultBaseName = "TrackGen"

const lockRetryDelay = 50 * time.Millisecond

// WriteError reports a script that could not be written. Nothing is retried
// and no fallback location is tried.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("ERROR: Could not open %s for editing", e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer persists a rendered script as <Dir>/<BaseName>_tracks.txt.
type Writer struct {
	Dir      string
	BaseName string
}

// New returns a Writer targeting dir. An empty baseName selects DefaultBaseName.
func New(dir, baseName string) Writer {
	if baseName == "" {
		baseName = DefaultBaseName
	}
	return Writer{Dir: dir, BaseName: baseName}
}

// Path returns the script location.
func (w Writer) Path() string {
	return filepath.Join(w.Dir, w.BaseName+"_tracks.txt")
}

// Write replaces the script with data. An advisory lock on <path>.lock keeps
// concurrent runs targeting the same file from interleaving; the lock file is
// removed again before the lock is released.
func (w Writer) Write(ctx context.Context, data []byte) (string, error) {
	path := w.Path()

	lock, err := acquireLock(ctx, path+".lock")
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	defer func() {
		_ = os.Remove(lock.Path())
		_ = lock.Unlock()
	}()

	if err := fileutil.WriteFile(path, data, 0o644); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// acquireLock takes an exclusive lock on lockPath. A holder that got the lock
// on a file its predecessor already unlinked starts over on the new file.
func acquireLock(ctx context.Context, lockPath string) (*flock.Flock, error) {
	for {
		lock := flock.New(lockPath)
		locked, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("acquire lock: %s held by another process", lockPath)
		}
		if sameLockFile(lock) {
			return lock, nil
		}
		_ = lock.Unlock()
	}
}

func sameLockFile(lock *flock.Flock) bool {
	held, err := lock.Stat()
	if err != nil {
		return false
	}
	current, err := os.Stat(lock.Path())
	if err != nil {
		return false
	}
	return os.SameFile(held, current)
}
