package imgprep

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/badmax333/LaserProcessing/internal/segment"
	"github.com/badmax333/LaserProcessing/pkg/geometry"
)

// CropCenterSquare extracts the square region of interest the spot is
// expected in: side length half the image height, centered horizontally on
// the right half of the frame, vertically centered. Returns
// ErrDegenerateGeometry for zero-sized images. The caller owns the
// returned Mat.
func CropCenterSquare(img gocv.Mat) (gocv.Mat, error) {
	h, w := img.Rows(), img.Cols()
	if h == 0 || w == 0 {
		return gocv.NewMat(), fmt.Errorf("crop %dx%d image: %w", w, h, segment.ErrDegenerateGeometry)
	}

	side := h / 2
	roi := geometry.RectInt{
		X:      3*w/4 - side/2,
		Y:      h/2 - side/2,
		Width:  side,
		Height: side,
	}
	roi = roi.Clamp(geometry.RectInt{Width: w, Height: h})
	if roi.Empty() {
		return gocv.NewMat(), fmt.Errorf("crop window %+v: %w", roi, segment.ErrDegenerateGeometry)
	}

	view := img.Region(roi.ToImageRect())
	defer view.Close()
	return view.Clone(), nil
}
