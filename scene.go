package grove

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// SceneConfig holds the fixed layout of the landscape.
type SceneConfig struct {
	Width, Height int
	MaxGeneration int
	Columns, Rows int

	Sky, Ground         color.RGBA
	// RootColor and TipColor are the pen colors at generation 0 and
	// MaxGeneration.
	RootColor, TipColor color.RGBA
	WidthRule           WidthRule
}

// Layout constants for the root grid.
const (
	columnSpacing = 250.0
	rowShift      = 100.0 // each row moves left and down by this much
	horizonGap    = 50.0  // first row sits this far below the horizon
	rootJitter    = 50.0
	trunkLength   = 50.0
	rowGrowth     = 0.3 // nearer rows get longer trunks
)

// DefaultSceneConfig returns the 600x600 landscape with 15 trees of 10
// generations each.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:         600,
		Height:        600,
		MaxGeneration: 9,
		Columns:       5,
		Rows:          3,
		Sky:           colornames.Lightskyblue,
		Ground:        colornames.Forestgreen,
		RootColor:     colornames.Saddlebrown,
		TipColor:      colornames.Darkgreen,
		WidthRule:     WidthSmooth,
	}
}

// Validate reports whether the config can be rendered.
func (c SceneConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grove: canvas %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.MaxGeneration <= 0:
		return fmt.Errorf("grove: maxGeneration %d must be positive: %w", c.MaxGeneration, ErrInvalidConfig)
	case c.Columns <= 0 || c.Rows <= 0:
		return fmt.Errorf("grove: root grid %dx%d: %w", c.Columns, c.Rows, ErrInvalidConfig)
	}
	return nil
}

// horizon is the y coordinate splitting sky from ground.
func (c SceneConfig) horizon() float64 {
	return float64(c.Height / 2)
}

// RootPlacement is where one tree starts.
type RootPlacement struct {
	Column, Row int
	Position    Vec2
	Angle       float64
	Length      float64
}

// Branch returns the generation-0 branch for this root.
func (p RootPlacement) Branch(maxGeneration int) Branch {
	return Branch{
		Start:         p.Position,
		Angle:         p.Angle,
		Length:        p.Length,
		MaxGeneration: maxGeneration,
	}
}

// RootPlacements lays out one root per grid cell, column-major. Each root
// consumes two draws from rng (x jitter, then y jitter).
func RootPlacements(cfg SceneConfig, rng Source) []RootPlacement {
	roots := make([]RootPlacement, 0, cfg.Columns*cfg.Rows)
	_ = eachRoot(cfg, rng, func(p RootPlacement) error {
		roots = append(roots, p)
		return nil
	})
	return roots
}

// eachRoot places the roots in grid order and calls fn for each one before
// placing the next, so fn may draw from rng in between. It stops at the
// first error fn returns.
func eachRoot(cfg SceneConfig, rng Source, fn func(RootPlacement) error) error {
	for i := range cfg.Columns {
		for j := range cfg.Rows {
			if err := fn(placeRoot(cfg, i, j, rng)); err != nil {
				return err
			}
		}
	}
	return nil
}

func placeRoot(cfg SceneConfig, i, j int, rng Source) RootPlacement {
	x := float64(i)*columnSpacing - float64(j)*rowShift + rootJitter*rng.Float64()
	y := cfg.horizon() + horizonGap + float64(j)*rowShift + rootJitter*rng.Float64()
	return RootPlacement{
		Column:   i,
		Row:      j,
		Position: Vec2{X: x, Y: y},
		Angle:    -math.Pi / 2,
		Length:   trunkLength * (1 + rowGrowth*float64(j)),
	}
}

// FillBackground paints the sky over the top half and the ground from the
// horizon down.
func FillBackground(c *Canvas, cfg SceneConfig) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	c.FillRect(Rect{X: 0, Y: 0, Width: w, Height: cfg.horizon()}, cfg.Sky)
	c.FillRect(Rect{X: 0, Y: cfg.horizon(), Width: w, Height: h}, cfg.Ground)
}

// BuildScene renders the full landscape onto a new canvas. All trees share
// one pen cache and rng. The caller owns the returned canvas.
func BuildScene(cfg SceneConfig, rng Source) (*Canvas, error) {
	c, _, err := buildScene(cfg, rng)
	return c, err
}

func buildScene(cfg SceneConfig, rng Source) (*Canvas, *BranchRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	c := NewCanvas(cfg.Width, cfg.Height)
	FillBackground(c, cfg)

	r := NewBranchRenderer(NewPenCache(cfg.RootColor, cfg.TipColor, cfg.WidthRule), rng)

	if err := drawTrees(c, r, cfg, rng); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	Logger().Debug("grove: scene composed",
		"roots", cfg.Columns*cfg.Rows, "segments", r.Segments(), "pens", r.Pens().Len())
	return c, r, nil
}

// drawTrees draws one tree per root onto s. Placement and branch draws
// interleave on rng.
func drawTrees(s Surface, r *BranchRenderer, cfg SceneConfig, rng Source) error {
	return eachRoot(cfg, rng, func(root RootPlacement) error {
		if err := r.DrawTree(s, root.Branch(cfg.MaxGeneration)); err != nil {
			return fmt.Errorf("grove: tree at (%d,%d): %w", root.Column, root.Row, err)
		}
		return nil
	})
}
