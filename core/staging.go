package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const jarSuffix = ".jar"

// PrepareStagingDir creates the staging directory (including parents) if
// needed and removes every direct entry whose name ends in ".jar". The suffix
// match is exact and case-sensitive, so ".JAR" files are left alone.
func PrepareStagingDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create staging directory %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read staging directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), jarSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to clean staging directory: %w", err)
		}
	}
	return nil
}
