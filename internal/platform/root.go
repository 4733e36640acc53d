package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindLogDir looks upwards from startDir for the closest directory holding a
// log file named fileName and returns its absolute path.
func FindLogDir(startDir, fileName string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, fileName) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", fileName, startDir)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
