package imgprep

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestToMatChannelOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	mat := ToMat(img)
	defer mat.Close()

	if mat.Rows() != 1 || mat.Cols() != 2 || mat.Channels() != 3 {
		t.Fatalf("mat shape = %dx%d c%d, want 1x2 c3", mat.Cols(), mat.Rows(), mat.Channels())
	}

	// BGR order: blue first.
	if b := mat.GetUCharAt(0, 0); b != 30 {
		t.Errorf("B(0,0) = %d, want 30", b)
	}
	if g := mat.GetUCharAt(0, 1); g != 20 {
		t.Errorf("G(0,0) = %d, want 20", g)
	}
	if r := mat.GetUCharAt(0, 2); r != 10 {
		t.Errorf("R(0,0) = %d, want 10", r)
	}
	if b := mat.GetUCharAt(0, 3); b != 50 {
		t.Errorf("B(1,0) = %d, want 50", b)
	}
}

func TestLoadPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 30)})
		}
	}

	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	mat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer mat.Close()

	if mat.Rows() != 6 || mat.Cols() != 8 {
		t.Fatalf("mat = %dx%d, want 8x6", mat.Cols(), mat.Rows())
	}
	// Gray source: all three channels carry the luminance.
	if got := mat.GetUCharAt(2, 4*3); got != 120 {
		t.Errorf("pixel (4,2) = %d, want 120", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
