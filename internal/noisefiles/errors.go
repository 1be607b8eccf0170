package noisefiles

import (
	"fmt"
)

// Input identifies which of the two constructor paths an error refers to.
type Input string

const (
	InputImage Input = "image"
	InputXML   Input = "xml"
)

// InvalidPathError reports a constructor path that does not name an existing
// regular file.
type InvalidPathError struct {
	Path  string
	Input Input
	Msg   string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid %s filename %q: %s", e.Input, e.Path, e.Msg)
}

// ImageReadError reports a source image that could not be decoded.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("read image %q: %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error { return e.Err }

// ImageWriteError reports an output image that could not be written.
type ImageWriteError struct {
	Path string
	Err  error
}

func (e *ImageWriteError) Error() string {
	return fmt.Sprintf("write image %q: %v", e.Path, e.Err)
}

func (e *ImageWriteError) Unwrap() error { return e.Err }

// Fields checked before writing or showing.
const (
	FieldOutputName     = "outputName"
	FieldOutputFolder   = "outputFolder"
	FieldDistortedImage = "distortedImage"
	FieldBuffer         = "buffer"
)

// MissingStateError reports an operation attempted before the state it
// depends on was set.
type MissingStateError struct {
	Field string
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("%s is not set", e.Field)
}
