package grove

import "math"

// Branch is the state of one recursive DrawTree call.
type Branch struct {
	Start         Vec2
	Angle         float64 // radians; -π/2 points up the screen
	Length        float64
	Generation    int
	MaxGeneration int
}

// Branching factors. Each segment fans out into three children offset by
// -1, 0 and +1 spread steps.
const (
	branchSpread       = math.Pi / 6
	branchSpreadJitter = 0.4
	branchShrink       = 0.6
	branchShrinkJitter = 0.2
)

var branchOffsets = [...]float64{-1, 0, 1}

// End returns the far end of the branch segment.
func (b Branch) End() Vec2 {
	return b.Start.Add(Vec2{
		X: math.Cos(b.Angle) * b.Length,
		Y: math.Sin(b.Angle) * b.Length,
	})
}

// child returns the branch spawned at offset k using draws r1 (angle) and
// r2 (length).
func (b Branch) child(k, r1, r2 float64) Branch {
	return Branch{
		Start:         b.End(),
		Angle:         b.Angle + k*branchSpread*(1+branchSpreadJitter*r1),
		Length:        b.Length * branchShrink * (1 + branchShrinkJitter*r2),
		Generation:    b.Generation + 1,
		MaxGeneration: b.MaxGeneration,
	}
}

// BranchRenderer draws ternary branching trees. One renderer serves a whole
// scene so its pen cache is shared by every tree.
type BranchRenderer struct {
	pens     *PenCache
	rng      Source
	segments int
}

// NewBranchRenderer creates a renderer that resolves pens from pens and
// draws perturbations from rng.
func NewBranchRenderer(pens *PenCache, rng Source) *BranchRenderer {
	return &BranchRenderer{pens: pens, rng: rng}
}

// Pens returns the renderer's pen cache.
func (r *BranchRenderer) Pens() *PenCache {
	return r.pens
}

// Segments returns the number of segments stroked so far.
func (r *BranchRenderer) Segments() int {
	return r.segments
}

// DrawTree strokes b onto s and recurses into its three children until the
// generation passes b.MaxGeneration. Segment endpoints are truncated to
// pixel positions; children start from the exact end point. The first
// error from the pen cache or the surface stops the recursion.
func (r *BranchRenderer) DrawTree(s Surface, b Branch) error {
	if b.Generation > b.MaxGeneration {
		return nil
	}

	pen, err := r.pens.Pen(b.Generation, b.MaxGeneration)
	if err != nil {
		return err
	}

	start, end := b.Start.Truncate(), b.End().Truncate()
	if err := s.StrokeLine(start.X, start.Y, end.X, end.Y, pen); err != nil {
		return err
	}
	r.segments++

	for _, k := range branchOffsets {
		r1 := r.rng.Float64()
		r2 := r.rng.Float64()
		if err := r.DrawTree(s, b.child(k, r1, r2)); err != nil {
			return err
		}
	}
	return nil
}
