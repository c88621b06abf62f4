package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalTiles       int           // Number of tiles the image was split into
	NumWorkers       int           // Workers used
	Duration         time.Duration // Wall time spent tracing
	MeanLuminance    float64       // Mean linear luminance over all pixels
	StdDevLuminance  float64       // Standard deviation of linear luminance
	BackgroundPixels int           // Pixels exactly equal to the background color
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// computeStats fills the luminance statistics from the finished frame
func computeStats(fb *FrameBuffer, background core.Color) (mean, stdDev float64, backgroundPixels int) {
	luminance := make([]float64, 0, fb.Width()*fb.Height())
	for _, c := range fb.pixels {
		luminance = append(luminance, c.Luminance())
		if c == background {
			backgroundPixels++
		}
	}
	if len(luminance) < 2 {
		if len(luminance) == 1 {
			mean = luminance[0]
		}
		return mean, 0, backgroundPixels
	}
	mean, stdDev = stat.MeanStdDev(luminance, nil)
	return mean, stdDev, backgroundPixels
}

// CalculateAverageLuminance returns the mean luminance of an 8-bit image, in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	luminance := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			luminance = append(luminance, c.Luminance())
		}
	}
	if len(luminance) == 0 {
		return 0
	}
	return stat.Mean(luminance, nil)
}
