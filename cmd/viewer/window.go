//go:build cgo

package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windowOptions struct {
	title string
	scale int
	save  func() (string, error)
}

// runWindow shows the canvas until the window is closed or Escape is pressed.
// It blocks and must be called from the main goroutine.
func runWindow(cnv *canvas, opts windowOptions) error {
	width, height := cnv.size()
	v := &viewer{
		cnv:     cnv,
		opts:    opts,
		scratch: make([]byte, width*height*4),
	}
	ebiten.SetWindowTitle(opts.title)
	ebiten.SetWindowSize(width*opts.scale, height*opts.scale)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(v)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type viewer struct {
	cnv     *canvas
	opts    windowOptions
	img     *ebiten.Image
	scratch []byte
	version uint64
	status  string
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && v.opts.save != nil {
		if filename, err := v.opts.save(); err != nil {
			fmt.Printf("Error saving snapshot: %v\n", err)
		} else {
			fmt.Printf("Snapshot saved as %s\n", filename)
		}
	}

	if status := v.cnv.status(); status != v.status {
		v.status = status
		ebiten.SetWindowTitle(v.opts.title + " (" + status + ")")
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		width, height := v.cnv.size()
		v.img = ebiten.NewImage(width, height)
	}
	if version, changed := v.cnv.copyPixels(v.scratch, v.version); changed {
		v.version = version
		v.img.WritePixels(v.scratch)
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cnv.size()
}
