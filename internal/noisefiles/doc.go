// Package noisefiles manages the files around one noise-adding run: the
// source image, its XML annotation file, and the tagged output image.
//
// A FileOperations value is created from an image/XML pair; both must name
// existing regular files or construction fails with an *InvalidPathError.
// After that the value follows a simple lifecycle:
//
//	ops, err := noisefiles.New("scans/page-01.png", "scans/page-01.xml")
//	if err != nil {
//	    return err
//	}
//	src, err := ops.LoadImage(imageio.Grayscale)
//	...
//	ops.SetDistortedImage(noisy)
//	if _, err := ops.ComputeOutputName("_noisy"); err != nil {
//	    return err
//	}
//	return ops.WriteImage() // writes <cwd>/output/page-01_noisy.png
//
// Pixel I/O, display and filesystem checks are delegated to collaborators
// that can be swapped through Options. A FileOperations value is not safe for
// concurrent use.
package noisefiles
