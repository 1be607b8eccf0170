package noisefiles

import (
	"os"

	"addnoise/internal/display"
	"addnoise/internal/imageio"
	"addnoise/internal/logging"
	"addnoise/pkg/fileops"
)

// Title used for the display surface.
const WindowTitle = "Image"

// DefaultOutputDir is the folder, relative to the working directory, used
// when no output folder was set.
const DefaultOutputDir = "output"

type config struct {
	fs     fileops.FileSystem
	codec  imageio.Codec
	viewer display.Viewer
	logger *logging.AppLogger
	getwd  func() (string, error)
}

type Option func(*config)

func defaultConfig() config {
	return config{
		fs:    fileops.OS{},
		codec: imageio.NewCodec(),
		getwd: os.Getwd,
	}
}

// WithFileSystem replaces the filesystem used for existence checks.
func WithFileSystem(fs fileops.FileSystem) Option {
	return func(c *config) { c.fs = fs }
}

// WithCodec replaces the image reader/writer.
func WithCodec(codec imageio.Codec) Option {
	return func(c *config) { c.codec = codec }
}

// WithViewer replaces the display surface. Without it a terminal viewer is
// created the first time ShowImage is called.
func WithViewer(viewer display.Viewer) Option {
	return func(c *config) { c.viewer = viewer }
}

func WithLogger(logger *logging.AppLogger) Option {
	return func(c *config) { c.logger = logger }
}

// WithGetwd replaces the working directory lookup used for the default
// output folder.
func WithGetwd(getwd func() (string, error)) Option {
	return func(c *config) { c.getwd = getwd }
}
