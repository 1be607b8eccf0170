// Package fileops provides the small set of filesystem primitives the
// addnoise file layer is built on.
//
// # Existence Checks
//
// FileExists reports whether a path names an existing regular file. It is
// the check used when an image/XML pair is validated:
//
//	if !fileops.FileExists(imagePath) {
//	    return fmt.Errorf("invalid image filename: %s", imagePath)
//	}
//
// # Atomic Writes
//
// AtomicWriteFile streams content into a temporary file next to the
// destination and renames it into place. The destination either appears
// complete or is left unchanged:
//
//	err := fileops.AtomicWriteFile(outPath, func(w io.Writer) error {
//	    return png.Encode(w, img)
//	})
//
// # Directory Operations
//
// EnsureDirectoryExists creates directories with 0755 permissions and is safe
// to call repeatedly.
package fileops
