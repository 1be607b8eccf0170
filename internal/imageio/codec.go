// Package imageio reads and writes pixel buffers for the addnoise tool.
//
// Decoding goes through disintegration/imaging, which understands PNG, JPEG,
// GIF, BMP and TIFF; WebP decoding is registered from golang.org/x/image.
// Buffers come back in a predictable layout: *image.NRGBA for Color and
// *image.Gray for Grayscale, always anchored at the origin.
//
//	codec := imageio.NewCodec(imageio.WithJPEGQuality(90))
//	img, err := codec.Read("page-01.png", imageio.Grayscale)
//	...
//	err = codec.Write("output/page-01_noisy.png", img)
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"addnoise/pkg/fileops"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 95

var ErrNilImage = errors.New("image buffer is nil")

// Codec is the imaging collaborator used by the file layer.
type Codec interface {
	Read(path string, mode ColorMode) (image.Image, error)
	Write(path string, img image.Image) error
}

// ImagingCodec implements Codec on top of disintegration/imaging.
type ImagingCodec struct {
	jpegQuality int
}

type CodecOption func(*ImagingCodec)

// WithJPEGQuality sets the JPEG encoder quality. Values outside 1..100 are
// ignored.
func WithJPEGQuality(q int) CodecOption {
	return func(c *ImagingCodec) {
		if q >= 1 && q <= 100 {
			c.jpegQuality = q
		}
	}
}

func NewCodec(opts ...CodecOption) *ImagingCodec {
	c := &ImagingCodec{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// JPEGQuality reports the quality used when writing JPEG files.
func (c *ImagingCodec) JPEGQuality() int {
	return c.jpegQuality
}

// Read decodes the file at path and converts it to the requested mode.
func (c *ImagingCodec) Read(path string, mode ColorMode) (image.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	switch mode {
	case Grayscale:
		return ToGray(src), nil
	case Color:
		return imaging.Clone(src), nil
	default:
		return nil, fmt.Errorf("unsupported color mode: %s", mode)
	}
}

// Write encodes img in the format implied by path's extension. The file is
// replaced atomically; the containing directory must exist.
func (c *ImagingCodec) Write(path string, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}

	return fileops.AtomicWriteFile(path, func(w io.Writer) error {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(c.jpegQuality))
	})
}

// ToGray converts img to an origin-anchored *image.Gray.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}
