package grove

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// drawnTrunks draws every tree at generation depth 1 onto a recording
// surface and returns the start of each trunk in draw order.
func drawnTrunks(t *testing.T, cfg SceneConfig, rng Source) []image.Point {
	t.Helper()
	s := &recordingSurface{}
	r := newTestRenderer(rng)
	if err := drawTrees(s, r, cfg, rng); err != nil {
		t.Fatalf("drawTrees: %v", err)
	}

	var trunks []image.Point
	for _, seg := range s.segments {
		if seg.pen == r.Pens().pens[PenKey(0, cfg.MaxGeneration)] {
			trunks = append(trunks, seg.from)
		}
	}
	return trunks
}

func TestDrawTreesFollowsRootPlacements(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.MaxGeneration = 1

	var want []image.Point
	for _, p := range RootPlacements(cfg, &constSource{}) {
		want = append(want, p.Position.Truncate())
	}

	got := drawnTrunks(t, cfg, &constSource{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trunk starts mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawTreesDrawCount(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.MaxGeneration = 1
	rng := &constSource{v: 0.5}

	s := &recordingSurface{}
	if err := drawTrees(s, newTestRenderer(rng), cfg, rng); err != nil {
		t.Fatalf("drawTrees: %v", err)
	}

	// Two placement draws per root, two per child of every stroked segment.
	roots := cfg.Columns * cfg.Rows
	perTree := treeSegments(cfg.MaxGeneration)
	if want := roots*2 + roots*perTree*6; rng.draws != want {
		t.Errorf("draws = %d, want %d", rng.draws, want)
	}
	if want := roots * perTree; len(s.segments) != want {
		t.Errorf("segments = %d, want %d", len(s.segments), want)
	}
}

func TestDrawTreesStopsAtFirstError(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.MaxGeneration = 1
	perTree := treeSegments(cfg.MaxGeneration)

	// Fail on the trunk of the second tree, column 0 row 1.
	s := &recordingSurface{failAt: perTree + 1}
	rng := &constSource{}
	err := drawTrees(s, newTestRenderer(rng), cfg, rng)
	if !errors.Is(err, errStrokeFailed) {
		t.Fatalf("err = %v, want %v", err, errStrokeFailed)
	}
	if !strings.Contains(err.Error(), "tree at (0,1)") {
		t.Errorf("err = %q, want it to name tree (0,1)", err)
	}
	if len(s.segments) != perTree {
		t.Errorf("segments = %d, want %d", len(s.segments), perTree)
	}
	// Only the first two roots were placed.
	if want := 2*2 + perTree*6; rng.draws != want {
		t.Errorf("draws = %d, want %d", rng.draws, want)
	}
}
