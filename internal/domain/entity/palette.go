package entity

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSteps is returned when a gradient is requested with fewer than one step.
var ErrInvalidSteps = errors.New("gradient steps must be at least 1")

// DefaultGradientSteps is the number of interpolation steps used when none is configured.
const DefaultGradientSteps = 10

// Palette is an ordered list of colors; a character's palette index selects its color.
type Palette []Color

// BuildGradient interpolates steps+1 colors from left to right inclusive.
func BuildGradient(left, right string, steps int) (Palette, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	from, err := ParseHexColor(left)
	if err != nil {
		return nil, fmt.Errorf("left color: %w", err)
	}
	to, err := ParseHexColor(right)
	if err != nil {
		return nil, fmt.Errorf("right color: %w", err)
	}

	palette := make(Palette, 0, steps+1)
	for c := 0; c <= steps; c++ {
		palette = append(palette, from.Lerp(to, float64(c)/float64(steps)))
	}
	return palette, nil
}

// BuildCyclicGradient mirrors the linear gradient so a walk can bounce back
// toward the start. The mirrored half drops the first entry and the last two,
// so neither endpoint repeats.
func BuildCyclicGradient(left, right string, steps int) (Palette, error) {
	linear, err := BuildGradient(left, right, steps)
	if err != nil {
		return nil, err
	}
	return linear.Mirror(), nil
}

// Mirror returns p followed by reverse(p[1:len(p)-2]).
func (p Palette) Mirror() Palette {
	out := slices.Clone(p)
	if len(p) < 3 {
		return out
	}
	back := slices.Clone(p[1 : len(p)-2])
	slices.Reverse(back)
	return append(out, back...)
}

// Hex returns the palette as #rrggbb strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
