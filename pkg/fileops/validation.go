package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a path that starts with "~/" to the user's home directory.
// The original path is returned if it has no such prefix or the home
// directory cannot be determined.
//
// Usage example:
//
//	expanded := fileops.ExpandPath("~/scans/output")
//	// Returns something like "/home/user/scans/output"
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ValidateExtension normalizes a file extension to its dotted, lower-case form.
// It returns "" for empty or lone-dot input.
//
//	fileops.ValidateExtension("PNG")  // ".png"
//	fileops.ValidateExtension(".Jpg") // ".jpg"
//	fileops.ValidateExtension(".")    // ""
func ValidateExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))

	if ext == "" || ext == "." {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// ValidateFilenameFragment checks that a string can be spliced into a file
// name without changing the directory it lands in. Empty fragments are valid.
func ValidateFilenameFragment(fragment string) error {
	if strings.ContainsAny(fragment, `/\`) {
		return fmt.Errorf("filename fragment contains path separators: %q", fragment)
	}
	if strings.Contains(fragment, "..") {
		return fmt.Errorf("path traversal not allowed in filename fragment: %q", fragment)
	}
	if strings.ContainsRune(fragment, 0) {
		return fmt.Errorf("filename fragment contains null bytes")
	}
	return nil
}
