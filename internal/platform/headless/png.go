package headless

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// WritePNG encodes f as PNG.
func WritePNG(w io.Writer, f *core.Frame) error {
	if f == nil {
		return fmt.Errorf("headless: no frame to encode")
	}
	if err := png.Encode(w, f); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}

// SavePNG writes f to path, creating parent directories.
func SavePNG(path string, f *core.Frame) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("headless: cannot create directory %s: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: create %s: %w", path, err)
	}
	if err := WritePNG(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
