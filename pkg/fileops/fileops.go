package fileops

import (
	"os"
)

// FileSystem is the subset of filesystem behaviour the file layer depends on.
// It exists so callers can substitute an in-memory fake in tests.
type FileSystem interface {
	FileExists(path string) bool
	MkdirAll(path string) error
}

// OS implements FileSystem against the host filesystem.
type OS struct{}

// FileExists reports whether path exists and is a regular file.
func (OS) FileExists(path string) bool {
	return FileExists(path)
}

// MkdirAll creates path and any missing parents.
func (OS) MkdirAll(path string) error {
	if DirExists(path) {
		return nil
	}
	return EnsureDirectoryExists(path)
}

// FileExists reports whether path names an existing regular file.
// Symlinks are followed; directories and special files report false.
//
// Usage example:
//
//	if !fileops.FileExists("/data/page-01.png") {
//	    return errors.New("missing input")
//	}
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
