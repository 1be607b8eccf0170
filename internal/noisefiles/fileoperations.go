package noisefiles

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"addnoise/internal/display"
	"addnoise/internal/imageio"
	"addnoise/internal/logging"

	"github.com/hashicorp/go-multierror"
)

// FileOperations tracks the input pair, the derived output path and the
// in-memory buffers of a single run.
type FileOperations struct {
	cfg    config
	logger *logging.AppLogger

	imageFilename string
	xmlFilename   string

	outputFolder    string
	outputFolderSet bool
	outputName      string

	image          image.Image
	distortedImage image.Image
}

// New validates that imagePath and xmlPath both name existing regular files.
// The image path is checked first. On failure the returned error is an
// *InvalidPathError and no FileOperations is returned.
func New(imagePath, xmlPath string, opts ...Option) (*FileOperations, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.GetDefault()
	}
	logger := cfg.logger.With("component", "noisefiles")

	if err := checkFile(cfg, imagePath, InputImage); err != nil {
		logger.Debug("Rejected input", "input", InputImage, "path", imagePath)
		return nil, err
	}
	if err := checkFile(cfg, xmlPath, InputXML); err != nil {
		logger.Debug("Rejected input", "input", InputXML, "path", xmlPath)
		return nil, err
	}

	logger.Debug("Validated input pair", "image", imagePath, "xml", xmlPath)
	return &FileOperations{
		cfg:           cfg,
		logger:        logger,
		imageFilename: imagePath,
		xmlFilename:   xmlPath,
	}, nil
}

func checkFile(cfg config, path string, input Input) error {
	if strings.TrimSpace(path) == "" {
		return &InvalidPathError{Path: path, Input: input, Msg: "path is empty"}
	}
	if !cfg.fs.FileExists(path) {
		return &InvalidPathError{Path: path, Input: input, Msg: "no such file"}
	}
	return nil
}

func (f *FileOperations) ImagePath() string { return f.imageFilename }

func (f *FileOperations) XMLPath() string { return f.xmlFilename }

// OutputFolder returns the folder set explicitly or by ComputeOutputName,
// or "" if neither happened yet.
func (f *FileOperations) OutputFolder() string { return f.outputFolder }

// OutputName returns the last derived output path, or "".
func (f *FileOperations) OutputName() string { return f.outputName }

// Image returns the last successfully loaded source image.
func (f *FileOperations) Image() image.Image { return f.image }

func (f *FileOperations) DistortedImage() image.Image { return f.distortedImage }

// SetOutputFolder overwrites the output folder. The path is not checked; an
// empty string is a valid choice meaning the working directory.
func (f *FileOperations) SetOutputFolder(path string) {
	f.outputFolder = path
	f.outputFolderSet = true
}

// LoadImage decodes the source image in the given mode and keeps it as the
// current source image. A failed read leaves the previous one in place.
func (f *FileOperations) LoadImage(mode imageio.ColorMode) (image.Image, error) {
	start := time.Now()
	img, err := f.cfg.codec.Read(f.imageFilename, mode)
	if err != nil {
		return nil, &ImageReadError{Path: f.imageFilename, Err: err}
	}
	if img == nil {
		return nil, &ImageReadError{Path: f.imageFilename, Err: imageio.ErrNilImage}
	}
	f.logger.LogPerformance("load_image", start, "path", f.imageFilename)

	f.image = img
	f.logger.Debug("Loaded image", "path", f.imageFilename, "mode", mode, "bounds", img.Bounds().String())
	return img, nil
}

// SetDistortedImage stores the buffer to be written by WriteImage.
func (f *FileOperations) SetDistortedImage(img image.Image) {
	f.distortedImage = img
}

// ComputeOutputName derives and stores
// <outputFolder>/<image stem><tag><image extension>. If no output folder was
// set it becomes <cwd>/output first.
func (f *FileOperations) ComputeOutputName(tag string) (string, error) {
	folder := f.outputFolder
	if !f.outputFolderSet {
		cwd, err := f.cfg.getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine default output folder: %w", err)
		}
		folder = filepath.Join(cwd, DefaultOutputDir)
		f.SetOutputFolder(folder)
		f.logger.Debug("Output folder defaulted", "folder", folder)
	}

	f.outputName = filepath.Join(folder, OutputBaseName(f.imageFilename, tag))
	return f.outputName, nil
}

// OutputBaseName returns the file name part of the output path for
// imagePath tagged with tag. Only the last extension is kept after the tag;
// dot-files such as ".scan" have no extension.
func OutputBaseName(imagePath, tag string) string {
	base := filepath.Base(imagePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.Trim(stem, ".") == "" {
		stem, ext = base, ""
	}
	return stem + tag + ext
}

// EnsureOutputFolder creates the output folder and its parents. The folder
// must have been set or derived by ComputeOutputName; an empty folder means
// the working directory and needs nothing.
func (f *FileOperations) EnsureOutputFolder() error {
	if !f.outputFolderSet {
		return &MissingStateError{Field: FieldOutputFolder}
	}
	if f.outputFolder == "" {
		return nil
	}
	if err := f.cfg.fs.MkdirAll(f.outputFolder); err != nil {
		return fmt.Errorf("failed to prepare output folder: %w", err)
	}
	return nil
}

// WriteImage writes the distorted image to the output name. Both must have
// been set; otherwise a *MissingStateError per unset field is returned and
// nothing is written.
func (f *FileOperations) WriteImage() error {
	var merr *multierror.Error
	if f.outputName == "" {
		merr = multierror.Append(merr, &MissingStateError{Field: FieldOutputName})
	}
	if f.distortedImage == nil {
		merr = multierror.Append(merr, &MissingStateError{Field: FieldDistortedImage})
	}
	if err := merr.ErrorOrNil(); err != nil {
		f.logger.Warn("Refusing to write image", "error", err)
		if len(merr.Errors) == 1 {
			return merr.Errors[0]
		}
		return err
	}

	start := time.Now()
	if err := f.cfg.codec.Write(f.outputName, f.distortedImage); err != nil {
		return &ImageWriteError{Path: f.outputName, Err: err}
	}
	f.logger.LogPerformance("write_image", start, "path", f.outputName)
	f.logger.Info("Wrote image", "path", f.outputName)
	return nil
}

// ShowImage displays img and blocks until the user dismisses it.
func (f *FileOperations) ShowImage(img image.Image) error {
	if img == nil {
		return &MissingStateError{Field: FieldBuffer}
	}
	if f.cfg.viewer == nil {
		f.cfg.viewer = display.NewTerminalViewer(display.WithLogger(f.cfg.logger))
	}
	return f.cfg.viewer.Show(WindowTitle, img)
}
