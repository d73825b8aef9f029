package imgprep

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	"github.com/badmax333/LaserProcessing/internal/segment"
)

func TestCropCenterSquare(t *testing.T) {
	// 100x200 frame: side = 50, window centered on x=150, y=50.
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 100, 200, gocv.MatTypeCV8U)
	defer img.Close()
	img.SetUCharAt(50, 150, 201)

	roi, err := CropCenterSquare(img)
	if err != nil {
		t.Fatalf("CropCenterSquare failed: %v", err)
	}
	defer roi.Close()

	if roi.Rows() != 50 || roi.Cols() != 50 {
		t.Fatalf("ROI = %dx%d, want 50x50", roi.Cols(), roi.Rows())
	}
	if got := roi.GetUCharAt(25, 25); got != 201 {
		t.Errorf("window center = %d, want the marked pixel (201)", got)
	}
}

func TestCropCenterSquareClampsNarrowFrames(t *testing.T) {
	// 100 rows x 40 cols: the nominal window overhangs the right edge and
	// must shrink instead of failing.
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 100, 40, gocv.MatTypeCV8U)
	defer img.Close()

	roi, err := CropCenterSquare(img)
	if err != nil {
		t.Fatalf("CropCenterSquare failed: %v", err)
	}
	defer roi.Close()

	if roi.Rows() != 50 {
		t.Errorf("ROI height = %d, want 50", roi.Rows())
	}
	if roi.Cols() != 35 {
		t.Errorf("ROI width = %d, want 35 (clamped)", roi.Cols())
	}
}

func TestCropCenterSquareDegenerate(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := CropCenterSquare(empty)
	if !errors.Is(err, segment.ErrDegenerateGeometry) {
		t.Fatalf("err = %v, want ErrDegenerateGeometry", err)
	}
}

func TestCropCenterSquareOwnsResult(t *testing.T) {
	// The ROI must be a copy, not a view into the source frame.
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(7, 0, 0, 0), 100, 200, gocv.MatTypeCV8U)
	defer img.Close()

	roi, err := CropCenterSquare(img)
	if err != nil {
		t.Fatalf("CropCenterSquare failed: %v", err)
	}
	defer roi.Close()

	img.SetUCharAt(50, 150, 99)
	if got := roi.GetUCharAt(25, 25); got != 7 {
		t.Errorf("ROI pixel changed to %d after source mutation, want 7", got)
	}
}
