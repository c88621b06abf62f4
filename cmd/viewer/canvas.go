package main

import (
	"fmt"
	"image"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// canvas accumulates finished tiles while the render goroutine runs. The
// window reads it from the UI goroutine.
type canvas struct {
	mu         sync.Mutex
	img        *image.RGBA
	gamma      float64
	tilesDone  int
	totalTiles int
	version    uint64 // Incremented on every change to img
	finished   bool
	err        error
}

func newCanvas(width, height int, gamma float64) *canvas {
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		gamma: gamma,
	}
}

// applyTile copies a finished tile into the image
func (c *canvas) applyTile(update renderer.TileUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	width := update.Bounds.Dx()
	for y := update.Bounds.Min.Y; y < update.Bounds.Max.Y; y++ {
		row := (y - update.Bounds.Min.Y) * width
		for x := update.Bounds.Min.X; x < update.Bounds.Max.X; x++ {
			c.img.SetRGBA(x, y, update.Pixels[row+x-update.Bounds.Min.X].ToRGBA(c.gamma))
		}
	}
	c.tilesDone++
	c.totalTiles = update.TotalTiles
	c.version++
}

// finish records the outcome of the render
func (c *canvas) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finished = true
	c.err = err
}

// copyPixels copies the image into dst when it changed since the given version
func (c *canvas) copyPixels(dst []byte, since uint64) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version == since {
		return since, false
	}
	copy(dst, c.img.Pix)
	return c.version, true
}

// snapshot returns a copy of the current image
func (c *canvas) snapshot() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return img
}

func (c *canvas) size() (int, int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// status describes render progress for the window title
func (c *canvas) status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.finished && c.err != nil:
		return fmt.Sprintf("failed: %v", c.err)
	case c.finished:
		return "done"
	case c.totalTiles == 0:
		return "starting"
	default:
		return fmt.Sprintf("%d/%d tiles", c.tilesDone, c.totalTiles)
	}
}
