package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempPrefix marks the scratch files left behind by an interrupted write.
const tempPrefix = ".eeg_cleaner-tmp-"

// replaceFile writes data next to filename and renames it into place, so a
// reader never observes a half-written log. It does not guard against a
// concurrent writer replacing the file in between.
func replaceFile(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to move temp file to %s: %w", filename, err)
	}
	return nil
}
