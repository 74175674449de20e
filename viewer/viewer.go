// Package viewer shows a finished grove render in an Ebitengine window:
// the image on top and a one-line label strip underneath.
package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/grove"
)

// Config controls the window. Zero fields take defaults.
type Config struct {
	Title       string
	LabelHeight int         // height of the strip under the image, in pixels
	LabelColor  color.Color // label text color
	StripColor  color.Color // label strip background
}

const (
	defaultTitle       = "Grove"
	defaultLabelHeight = 24
	labelPadding       = 6
)

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.LabelHeight <= 0 {
		c.LabelHeight = defaultLabelHeight
	}
	if c.LabelColor == nil {
		c.LabelColor = color.Black
	}
	if c.StripColor == nil {
		c.StripColor = color.White
	}
	return c
}

// Viewer implements ebiten.Game for a static image plus label. It never
// changes after construction.
type Viewer struct {
	src   image.Image
	img   *ebiten.Image // uploaded lazily on the first Draw
	label string
	w, h  int
	cfg   Config
	face  text.Face
}

var _ ebiten.Game = (*Viewer)(nil)

// New creates a viewer for img. The image is uploaded to the GPU on the
// first frame, so New may be called before the game loop starts.
func New(img image.Image, label string, cfg Config) *Viewer {
	b := img.Bounds()
	return &Viewer{
		src:   img,
		label: label,
		w:     b.Dx(),
		h:     b.Dy(),
		cfg:   cfg.withDefaults(),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Label returns the text shown under the image.
func (v *Viewer) Label() string { return v.label }

// Update does nothing; the scene is static.
func (v *Viewer) Update() error { return nil }

// Draw blits the image and renders the label strip.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
		grove.Logger().Debug("viewer: image uploaded", "width", v.w, "height", v.h)
	}
	screen.Fill(v.cfg.StripColor)
	screen.DrawImage(v.img, nil)

	op := &text.DrawOptions{}
	x, y := v.labelOrigin()
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(v.cfg.LabelColor)
	text.Draw(screen, v.label, v.face, op)
}

// labelOrigin is the top-left of the label text inside the strip.
func (v *Viewer) labelOrigin() (float64, float64) {
	return labelPadding, float64(v.h + (v.cfg.LabelHeight-basicfont.Face7x13.Height)/2)
}

// Layout returns a fixed logical size: the image plus the label strip.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.w, v.h + v.cfg.LabelHeight
}

// Run opens a window sized to the image and blocks until it is closed.
func Run(img image.Image, label string, cfg Config) error {
	v := New(img, label, cfg)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	grove.Logger().Info("viewer: opening window", "title", v.cfg.Title, "width", w, "height", h)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("viewer: run: %w", err)
	}
	return nil
}
