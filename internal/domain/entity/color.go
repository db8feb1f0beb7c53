package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color is not a 6-digit hex value.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is an RGB triple with channels in [0,255].
type Color struct {
	R int
	G int
	B int
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
func ParseHexColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColorFormat, value)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
		}
		channels[i] = int(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// String renders the color as a CSS rgb() value.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates between c and other at fraction p, rounding half up.
func (c Color) Lerp(other Color, p float64) Color {
	return Color{
		R: lerpChannel(c.R, other.R, p),
		G: lerpChannel(c.G, other.G, p),
		B: lerpChannel(c.B, other.B, p),
	}
}

func lerpChannel(from, to int, p float64) int {
	return int(math.Floor(float64(from) + float64(to-from)*p + 0.5))
}
