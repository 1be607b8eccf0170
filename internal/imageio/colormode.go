package imageio

import (
	"fmt"
	"strings"
)

// ColorMode selects how an image is decoded.
type ColorMode int

const (
	// Color decodes into an 8-bit NRGBA buffer.
	Color ColorMode = iota
	// Grayscale decodes into an 8-bit single channel buffer.
	Grayscale
)

func (m ColorMode) String() string {
	switch m {
	case Color:
		return "color"
	case Grayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode accepts "color", "grayscale" or "gray", case-insensitively.
// An empty string means Color.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "color", "colour":
		return Color, nil
	case "grayscale", "greyscale", "gray", "grey":
		return Grayscale, nil
	default:
		return Color, fmt.Errorf("unknown color mode %q", s)
	}
}

func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ColorMode) UnmarshalText(text []byte) error {
	parsed, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
