package imageio

import (
	"path/filepath"
	"slices"

	"addnoise/pkg/fileops"
)

var (
	readable = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}
	writable = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff"}
)

// ReadableExtensions lists the extensions Read can decode.
func ReadableExtensions() []string {
	return slices.Clone(readable)
}

// WritableExtensions lists the extensions Write can encode.
func WritableExtensions() []string {
	return slices.Clone(writable)
}

// CanRead reports whether path has an extension Read understands.
func CanRead(path string) bool {
	return slices.Contains(readable, fileops.ValidateExtension(filepath.Ext(path)))
}

// CanWrite reports whether path has an extension Write can produce.
func CanWrite(path string) bool {
	return slices.Contains(writable, fileops.ValidateExtension(filepath.Ext(path)))
}

// IsLossless reports whether writing to path preserves pixels exactly.
func IsLossless(path string) bool {
	switch fileops.ValidateExtension(filepath.Ext(path)) {
	case ".png", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}
