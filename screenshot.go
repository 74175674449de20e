package grove

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteSnapshot encodes the canvas as PNG into dir with a timestamped
// filename derived from label, creating dir if needed. It returns the path
// written.
func WriteSnapshot(c *Canvas, dir, label string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("grove: snapshot: mkdir %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s.png", now.Format("20060102_150405"), sanitizeLabel(label))
	path := filepath.Join(dir, name)
	if err := writePNG(path, c); err != nil {
		return "", fmt.Errorf("grove: snapshot: %w", err)
	}
	Logger().Info("grove: snapshot written", "path", path)
	return path, nil
}

// writePNG encodes a canvas to a PNG file at the given path.
func writePNG(path string, c *Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
