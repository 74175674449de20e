package grove

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Pen describes how one branch segment is stroked: a color plus a gg stroke
// style with butt caps. Pens are immutable once built; the cache hands out
// the same pointer for every request of a key.
type Pen struct {
	Color  color.RGBA
	Stroke gg.Stroke
}

// Width returns the stroke width in pixels.
func (p *Pen) Width() float64 {
	return p.Stroke.Width
}

// WidthRule selects how the taper exponent is divided.
type WidthRule uint8

const (
	// WidthSmooth divides the taper exponent as a real number, so every
	// generation gets its own width.
	WidthSmooth WidthRule = iota
	// WidthStepped uses integer division, producing a few discrete width
	// tiers shared by neighbouring generations.
	WidthStepped
)

// widthBase and widthSpan give the trunk width 1.5^6 ≈ 11.4 px and tips 1 px.
const (
	widthBase = 1.5
	widthSpan = 6
)

// PenKey packs a (generation, maxGeneration) pair into one cache key, with
// the generation in the high 32 bits.
func PenKey(generation, maxGeneration int) uint64 {
	return uint64(uint32(generation))<<32 | uint64(uint32(maxGeneration))
}

// PenCache memoizes pens by generation. It belongs to a single render and is
// not safe for concurrent use.
type PenCache struct {
	root, tip color.RGBA
	rule      WidthRule
	pens      map[uint64]*Pen
	builds    int
}

// NewPenCache creates an empty cache interpolating from root (generation 0)
// to tip (generation == maxGeneration).
func NewPenCache(root, tip color.RGBA, rule WidthRule) *PenCache {
	return &PenCache{
		root: root,
		tip:  tip,
		rule: rule,
		pens: make(map[uint64]*Pen),
	}
}

// Pen returns the pen for the given generation, building and caching it on
// first use.
func (c *PenCache) Pen(generation, maxGeneration int) (*Pen, error) {
	key := PenKey(generation, maxGeneration)
	if p, ok := c.pens[key]; ok {
		return p, nil
	}
	p, err := buildPen(c.root, c.tip, c.rule, generation, maxGeneration)
	if err != nil {
		return nil, err
	}
	c.pens[key] = p
	c.builds++
	Logger().Debug("grove: pen built",
		"generation", generation, "maxGeneration", maxGeneration,
		"color", p.Color, "width", p.Width())
	return p, nil
}

// Len returns the number of cached pens.
func (c *PenCache) Len() int {
	return len(c.pens)
}

// Builds returns how many pens have been constructed. It equals Len because
// a key is never rebuilt.
func (c *PenCache) Builds() int {
	return c.builds
}

func buildPen(root, tip color.RGBA, rule WidthRule, g, m int) (*Pen, error) {
	if m <= 0 {
		return nil, fmt.Errorf("grove: pen: maxGeneration %d: %w", m, ErrInvalidGeneration)
	}
	if g < 0 || g > m {
		return nil, fmt.Errorf("grove: pen: generation %d outside [0, %d]: %w", g, m, ErrInvalidGeneration)
	}
	return &Pen{
		Color: color.RGBA{
			R: lerpChannel(root.R, tip.R, g, m),
			G: lerpChannel(root.G, tip.G, g, m),
			B: lerpChannel(root.B, tip.B, g, m),
			A: 0xff,
		},
		Stroke: gg.DefaultStroke().
			WithWidth(penWidth(rule, g, m)).
			WithCap(gg.LineCapButt),
	}, nil
}

// lerpChannel interpolates with truncating integer division.
func lerpChannel(start, end uint8, g, m int) uint8 {
	return uint8(((m-g)*int(start) + g*int(end)) / m)
}

func penWidth(rule WidthRule, g, m int) float64 {
	if rule == WidthStepped {
		return math.Pow(widthBase, float64(widthSpan*(m-g)/m))
	}
	return math.Pow(widthBase, float64(widthSpan*(m-g))/float64(m))
}
