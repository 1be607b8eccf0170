package display

import (
	"errors"
	"fmt"
	"image"

	"addnoise/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var ErrNoImage = errors.New("no image to display")

// Viewer opens a display surface for img, blocks until the user dismisses it
// and releases the surface before returning.
type Viewer interface {
	Show(title string, img image.Image) error
}

// TerminalViewer implements Viewer with a full-screen bubbletea program.
type TerminalViewer struct {
	logger         *logging.AppLogger
	maxCols        int
	maxRows        int
	profile        *termenv.Profile
	programOptions []tea.ProgramOption
}

type Option func(*TerminalViewer)

// WithMaxSize bounds the drawing area in cells. Zero means the terminal size.
func WithMaxSize(cols, rows int) Option {
	return func(v *TerminalViewer) {
		v.maxCols = max(0, cols)
		v.maxRows = max(0, rows)
	}
}

func WithLogger(logger *logging.AppLogger) Option {
	return func(v *TerminalViewer) {
		v.logger = logger
	}
}

// WithColorProfile forces the color profile instead of detecting it from the
// output, e.g. termenv.TrueColor for terminals that under-report support.
func WithColorProfile(p termenv.Profile) Option {
	return func(v *TerminalViewer) {
		v.profile = &p
	}
}

// WithProgramOptions appends bubbletea options, mainly so tests can supply
// their own input and output.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(v *TerminalViewer) {
		v.programOptions = append(v.programOptions, opts...)
	}
}

func NewTerminalViewer(opts ...Option) *TerminalViewer {
	v := &TerminalViewer{logger: logging.GetDefault()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Show draws img until a key is pressed. The alt screen is left and the
// terminal restored on every return path, including a panic while drawing.
func (v *TerminalViewer) Show(title string, img image.Image) (err error) {
	if img == nil {
		return ErrNoImage
	}

	if v.profile != nil {
		previous := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(*v.profile)
		defer lipgloss.SetColorProfile(previous)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("display surface failed: %v", r)
		}
	}()

	model := NewModel(title, img, v.maxCols, v.maxRows, v.logger)
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, v.programOptions...)
	program := tea.NewProgram(model, opts...)

	v.logger.Debug("Opening display surface", "title", title, "bounds", img.Bounds().String())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("display surface failed: %w", err)
	}
	v.logger.Debug("Display surface released", "title", title)
	return nil
}
