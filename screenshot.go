package yuletree

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot. The hosting backend captures its
// next presented frame and hands it to FlushScreenshots, which writes one
// PNG per queued label into Config.ScreenshotDir.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// PendingScreenshots reports whether any screenshot is queued. Backends use
// it to skip the frame capture when nothing was requested.
func (a *App) PendingScreenshots() bool {
	return len(a.screenshotQueue) > 0
}

// FlushScreenshots writes img once for every queued label and clears the
// queue. It returns the paths written. Failures are logged, not returned,
// so a full disk never stops the animation.
func (a *App) FlushScreenshots(img image.Image) []string {
	if len(a.screenshotQueue) == 0 {
		return nil
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	dir := a.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logf("screenshot: mkdir %s: %v", dir, err)
		return nil
	}

	stamp := time.Now().Format("20060102_150405")
	var written []string
	for i, label := range a.screenshotQueue {
		name := fmt.Sprintf("%s_%03d_%s.png", stamp, i, sanitizeLabel(label))
		path := filepath.Join(dir, name)
		if err := writePNG(path, img); err != nil {
			Logf("screenshot: %v", err)
			continue
		}
		written = append(written, path)
	}
	return written
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
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
