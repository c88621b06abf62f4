package output

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	captionBG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	captionFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

const (
	captionHeight   = 16
	captionBaseline = 5 // Pixels from the bottom edge to the text baseline
	captionMargin   = 4
)

// rgbaDisplay adapts an *image.RGBA to the display interface tinyfont draws on
type rgbaDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*rgbaDisplay)(nil)

func newRGBADisplay(img *image.RGBA) *rgbaDisplay {
	return &rgbaDisplay{img: img}
}

func (d *rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	b := d.img.Bounds()
	px, py := b.Min.X+int(x), b.Min.Y+int(y)
	if !(image.Point{X: px, Y: py}).In(b) {
		return
	}
	d.img.SetRGBA(px, py, c)
}

// Display is a no-op; pixels land in the image immediately
func (d *rgbaDisplay) Display() error {
	return nil
}

func (d *rgbaDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			d.SetPixel(px, py, c)
		}
	}
}

// DrawCaption burns a one-line caption into a dark band along the bottom of img.
// Text wider than the image is clipped. Images shorter than the band are left untouched.
func DrawCaption(img *image.RGBA, text string) {
	d := newRGBADisplay(img)
	width, height := d.Size()
	if height < captionHeight || text == "" {
		return
	}

	d.FillRectangle(0, height-captionHeight, width, captionHeight, captionBG)
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, captionMargin, height-captionBaseline, text, captionFG)
}

// CaptionWidth returns the pixel width text occupies when drawn by DrawCaption
func CaptionWidth(text string) int {
	_, outboxWidth := tinyfont.LineWidth(&proggy.TinySZ8pt7b, text)
	return int(outboxWidth)
}
