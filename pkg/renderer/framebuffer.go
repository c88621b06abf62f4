package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameBuffer holds linear pixel colors, row-major with the origin at the top left.
// Its size is fixed when the render starts. During a render each tile writes
// a disjoint region, so no locking is needed.
type FrameBuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFrameBuffer creates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Bounds returns the frame as an image rectangle
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// At returns the linear color at pixel (x, y)
func (fb *FrameBuffer) At(x, y int) core.Color {
	return fb.pixels[y*fb.width+x]
}

// Set stores the linear color at pixel (x, y)
func (fb *FrameBuffer) Set(x, y int, c core.Color) {
	fb.pixels[y*fb.width+x] = c
}

// Region copies the pixels inside bounds, row-major
func (fb *FrameBuffer) Region(bounds image.Rectangle) []core.Color {
	region := make([]core.Color, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := y * fb.width
		region = append(region, fb.pixels[row+bounds.Min.X:row+bounds.Max.X]...)
	}
	return region
}

// ToRGBA converts the buffer to an 8-bit image, applying gamma and clamping to [0, 1]
func (fb *FrameBuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.At(x, y).ToRGBA(gamma))
		}
	}
	return img
}

// RGBA8 returns the pixels as tightly packed RGBA bytes with alpha 255
func (fb *FrameBuffer) RGBA8(gamma float64) []byte {
	return fb.ToRGBA(gamma).Pix
}
