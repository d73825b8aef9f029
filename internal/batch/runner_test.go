package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/badmax333/LaserProcessing/internal/segment"
)

// writeShot writes a 200x128 micrograph with a dark horizontal band lying
// fully inside the standard crop window (cols 118..182, rows 32..96). The
// band is 36 rows (rows 60..95, ROI rows 28..63), a majority of the ROI,
// so the median probe isolates it at width 35 and the adaptive driver
// terminates via keep-previous when the next level erases it.
func writeShot(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 200, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	for y := 60; y < 96; y++ {
		for x := 118; x < 182; x++ {
			img.SetGray(x, y, color.Gray{Y: 60})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestRunnerMeasuresFolder(t *testing.T) {
	dir := t.TempDir()
	writeShot(t, filepath.Join(dir, "1_spot.png"))
	writeShot(t, filepath.Join(dir, "2_spot.png"))
	// A corrupt shot must be recorded as failed without aborting the batch.
	if err := os.WriteFile(filepath.Join(dir, "3_corrupt.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	saveDir := t.TempDir()
	runner := NewRunner(segment.DefaultParams(), zerolog.Nop()).WithSaveDir(saveDir)

	records, err := runner.Run(dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	for _, rec := range records[:2] {
		if rec.Err != nil {
			t.Fatalf("%s failed: %v", rec.File, rec.Err)
		}
		if rec.Result.PixelWidth != 35 {
			t.Errorf("%s: PixelWidth = %d, want 35", rec.File, rec.Result.PixelWidth)
		}
		saved, err := os.ReadFile(filepath.Join(saveDir, rec.File))
		if err != nil {
			t.Errorf("annotated frame not saved for %s: %v", rec.File, err)
		} else if !bytes.HasPrefix(saved, []byte{0xFF, 0xD8}) {
			t.Errorf("saved frame for %s is not a JPEG", rec.File)
		}
	}

	if records[2].Err == nil {
		t.Error("corrupt shot should have failed")
	}
}
