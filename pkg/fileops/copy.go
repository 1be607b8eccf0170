package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWriteFile writes the output of fill to destPath atomically.
// The destination either appears fully written or not at all.
//
// The function uses a temporary file approach:
//  1. Creates a temporary file in the destination directory
//  2. Lets fill stream content into it
//  3. Syncs data to disk
//  4. Atomically renames the temporary file to the final destination
//
// The destination directory must already exist; it is not created here.
// File permissions are set to 0644. An existing destination is overwritten.
//
// Usage example:
//
//	err := fileops.AtomicWriteFile("/out/page_noisy.png", func(w io.Writer) error {
//	    return png.Encode(w, img)
//	})
func AtomicWriteFile(destPath string, fill func(w io.Writer) error) error {
	if fill == nil {
		return fmt.Errorf("no content writer provided")
	}

	dir := filepath.Dir(destPath)
	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup of temp file if anything goes wrong
	var writeSuccess bool
	defer func() {
		tempFile.Close()
		if !writeSuccess {
			os.Remove(tempPath)
		}
	}()

	if err := fill(tempFile); err != nil {
		return fmt.Errorf("failed to write file contents: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := tempFile.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	writeSuccess = true
	return nil
}

// EnsureDirectoryExists creates a directory and all necessary parent directories.
// This is equivalent to `mkdir -p` and is safe to call multiple times.
//
// The function sets directory permissions to 0755 (readable and executable by all,
// writable by owner only).
func EnsureDirectoryExists(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
