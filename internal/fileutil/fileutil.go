package fileutil

import (
	"os"
)

// WriteFile creates or truncates path with the given mode and writes data.
// Failures to open surface as *fs.PathError with Op "open", so callers can
// tell an unopenable target from a failed write.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
