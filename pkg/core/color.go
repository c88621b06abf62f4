package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB value. Channels may exceed 1 while light is being
// accumulated; they are only clamped when converted for output.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to color values
func (c Color) GammaCorrect(gamma float64) Color {
	if gamma == 1 {
		return c
	}
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(max(0, c.R), invGamma),
		G: math.Pow(max(0, c.G), invGamma),
		B: math.Pow(max(0, c.B), invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsBlack reports whether all channels are zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// ToRGBA converts the color to 8-bit RGBA, applying gamma and clamping to [0, 1]
func (c Color) ToRGBA(gamma float64) color.RGBA {
	out := c.GammaCorrect(gamma).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(math.Round(255 * out.R)),
		G: uint8(math.Round(255 * out.G)),
		B: uint8(math.Round(255 * out.B)),
		A: 255,
	}
}
