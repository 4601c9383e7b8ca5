package os

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates the directory if it doesn't exist yet.
func EnsureDir(path string) error {
	path, err := filterPath(path)
	if err != nil {
		return err
	}
	err = os.MkdirAll(path, 0755)
	if err != nil {
		return fmt.Errorf("ensureDir -> cannot create directory: %w; dir=%s", err, path)
	}
	return nil
}

func filterPath(path string) (string, error) {
	path, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("filterDir -> invalid path: %w; dir=%s", err, path)
	}
	if path == "/" {
		return "", fmt.Errorf("filterDir -> are you kidding me")
	}
	return path, nil
}
