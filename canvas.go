package grove

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Surface is anything a BranchRenderer can stroke segments onto.
type Surface interface {
	StrokeLine(x0, y0, x1, y1 int, pen *Pen) error
}

// Canvas is a fixed-size raster owned by one render. Pixels live in a
// gg.Pixmap (8-bit RGBA, straight alpha); line strokes are rasterized by a
// gg.Context drawing into that pixmap.
type Canvas struct {
	width, height int
	pixmap        *gg.Pixmap
	dc            *gg.Context
}

var (
	_ Surface   = (*Canvas)(nil)
	_ io.Closer = (*Canvas)(nil)
)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	return &Canvas{
		width:  width,
		height: height,
		pixmap: pm,
		dc:     dc,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// FillRect paints every pixel covered by r with col, clipped to the canvas.
// Bytes are written directly so the stored color is exact.
func (c *Canvas) FillRect(r Rect, col color.RGBA) {
	px := r.Pixels(c.Bounds())
	if px.Empty() {
		return
	}
	data := c.pixmap.Data()
	for y := px.Min.Y; y < px.Max.Y; y++ {
		i := (y*c.width + px.Min.X) * 4
		for x := px.Min.X; x < px.Max.X; x++ {
			data[i+0] = col.R
			data[i+1] = col.G
			data[i+2] = col.B
			data[i+3] = col.A
			i += 4
		}
	}
}

// StrokeLine draws a straight segment between two pixel positions with the
// pen's color and stroke style. Segments outside the canvas are clipped.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 int, pen *Pen) error {
	c.dc.SetColor(pen.Color)
	c.dc.SetStroke(pen.Stroke)
	c.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("grove: stroke (%d,%d)-(%d,%d): %w", x0, y0, x1, y1, err)
	}
	return nil
}

// RGBAAt returns the stored color of the pixel at (x, y). Pixels outside the
// canvas read as transparent.
func (c *Canvas) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	i := (y*c.width + x) * 4
	d := c.pixmap.Data()
	return color.RGBA{R: d[i], G: d[i+1], B: d[i+2], A: d[i+3]}
}

// Pix returns the raw RGBA bytes, 4 per pixel, row-major. The slice aliases
// the canvas and must not be retained past Close.
func (c *Canvas) Pix() []uint8 {
	return c.pixmap.Data()
}

// Image returns a copy of the canvas as an *image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	return c.pixmap.ToImage()
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context. Pixel data stays readable.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
