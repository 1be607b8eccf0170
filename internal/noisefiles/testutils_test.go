package noisefiles

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"addnoise/internal/imageio"
	"addnoise/internal/logging"
)

// fakeFS reports existence from a fixed set of paths.
type fakeFS struct {
	files map[string]bool
}

func (f fakeFS) FileExists(path string) bool { return f.files[path] }

func (f fakeFS) MkdirAll(string) error { return nil }

// brokenFS fails every directory creation.
type brokenFS struct{ fakeFS }

func (brokenFS) MkdirAll(path string) error { return fmt.Errorf("mkdir %s: read-only file system", path) }

// fakeCodec records calls instead of touching the disk.
type fakeCodec struct {
	readImg  image.Image
	readErr  error
	writeErr error

	readPath  string
	readMode  imageio.ColorMode
	writes    []string
	lastWrite image.Image
}

func (c *fakeCodec) Read(path string, mode imageio.ColorMode) (image.Image, error) {
	c.readPath, c.readMode = path, mode
	return c.readImg, c.readErr
}

func (c *fakeCodec) Write(path string, img image.Image) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, path)
	c.lastWrite = img
	return nil
}

type fakeViewer struct {
	title string
	shown image.Image
	err   error
}

func (v *fakeViewer) Show(title string, img image.Image) error {
	v.title, v.shown = title, img
	return v.err
}

func testLogger() Option {
	logger, _ := logging.NewTestLogger()
	return WithLogger(logger)
}

func fixedWd(dir string) Option {
	return WithGetwd(func() (string, error) { return dir, nil })
}

var errNoWd = errors.New("getwd failed")

func createTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 10, B: 40, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 5, G: 200, B: 90, A: 255})
			}
		}
	}
	return img
}
