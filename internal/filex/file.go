// Package filex contains filesystem helpers for the client's data directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir makes sure dir exists with owner-only permissions and returns
// its absolute path. Relative paths are resolved against the working
// directory.
func EnsureDataDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// DataFile returns the path of name inside the data directory dir, creating
// the directory if needed.
func DataFile(dir, name string) (string, error) {
	abs, err := EnsureDataDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, name), nil
}
