package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFile checks that path names a regular file the process can open.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path is empty")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist (path=%q)", path)
		}
		return fmt.Errorf("stat %q: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file (path=%q, mode=%s)", path, info.Mode())
	}

	// Permission bits do not account for ACLs; opening is the reliable check.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file is not readable (path=%q): %w", path, err)
	}
	_ = f.Close()

	return nil
}
