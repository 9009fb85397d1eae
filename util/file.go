package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the parent folder of savePath if it does not exist
func EnsureDir(savePath string) error {
	dir := filepath.Dir(savePath)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("error creating folder %s: %w", dir, err)
		}
	}
	return nil
}

// CreateFile creates (or truncates) the file at savePath, creating its folder when needed
func CreateFile(savePath string) (*os.File, error) {
	if err := EnsureDir(savePath); err != nil {
		return nil, err
	}
	f, err := os.Create(savePath)
	if err != nil {
		return nil, fmt.Errorf("error creating file %s: %w", savePath, err)
	}
	return f, nil
}
