package grove

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-render", "after-render"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	cfg := DefaultSceneConfig()
	c := NewCanvas(cfg.Width, cfg.Height)
	defer c.Close()
	FillBackground(c, cfg)

	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := WriteSnapshot(c, dir, "my label", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20260102_030405_my_label.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, c.Bounds(), img.Bounds())
	r, g, b, a := img.At(0, 0).RGBA()
	sr, sg, sb, sa := colornames.Lightskyblue.RGBA()
	assert.Equal(t, []uint32{sr, sg, sb, sa}, []uint32{r, g, b, a})
}

func TestWriteSnapshotBadDir(t *testing.T) {
	c := NewCanvas(4, 4)
	defer c.Close()

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := WriteSnapshot(c, filepath.Join(file, "sub"), "x", time.Now())
	assert.Error(t, err)
}
