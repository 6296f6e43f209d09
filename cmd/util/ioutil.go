package util

import (
	"errors"
	"fmt"
	"os"
)

// CleanOrCreateFolder makes sure path exists and is empty
func CleanOrCreateFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing folder: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("creating folder: %w", err)
	}
	return nil
}
