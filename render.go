package grove

import (
	"fmt"
	"image"
	"time"
)

// Result is one finished render. Elapsed covers building the scene and
// converting it to Image.
type Result struct {
	Canvas   *Canvas
	Image    *image.RGBA // display copy of Canvas
	Elapsed  time.Duration
	Segments int // segments stroked across all trees
	Pens     int // distinct pens built
}

// Render builds the scene described by cfg, converts it for display and
// measures how long both took.
func Render(cfg SceneConfig, rng Source) (*Result, error) {
	start := time.Now()
	c, r, err := buildScene(cfg, rng)
	if err != nil {
		return nil, err
	}
	img := c.Image()
	res := &Result{
		Canvas:   c,
		Image:    img,
		Elapsed:  time.Since(start),
		Segments: r.Segments(),
		Pens:     r.Pens().Len(),
	}
	Logger().Info("grove: render complete",
		"elapsed", res.Elapsed, "segments", res.Segments)
	return res, nil
}

// Label returns the render time text shown under the image.
func (r *Result) Label() string {
	return FormatRenderTime(r.Elapsed)
}

// FormatRenderTime formats d as whole milliseconds.
func FormatRenderTime(d time.Duration) string {
	return fmt.Sprintf("Render time: %d ms", d.Milliseconds())
}
