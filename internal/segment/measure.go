package segment

import (
	"math"

	"gocv.io/x/gocv"

	"github.com/badmax333/LaserProcessing/pkg/geometry"
)

// physicalPrecision is the number of decimal digits physical measurements
// are rounded to, for reproducible output across platforms.
const physicalPrecision = 5

// Measure finds the four extremal points of a contour and converts the
// resulting pixel extent to micrometers using the calibration constant.
// Width is the vertical extent (bottommost.Y - topmost.Y), length the
// horizontal one (rightmost.X - leftmost.X).
func Measure(contour gocv.PointVector, calib float64) Measurement {
	pts := contour.ToPoints()
	if len(pts) == 0 {
		return Measurement{}
	}

	left, right, top, bottom := pts[0], pts[0], pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < left.X {
			left = p
		}
		if p.X > right.X {
			right = p
		}
		if p.Y < top.Y {
			top = p
		}
		if p.Y > bottom.Y {
			bottom = p
		}
	}

	pw := bottom.Y - top.Y
	pl := right.X - left.X

	return Measurement{
		PixelWidth:     pw,
		PixelLength:    pl,
		PhysicalWidth:  roundTo(float64(pw)*calib, physicalPrecision),
		PhysicalLength: roundTo(float64(pl)*calib, physicalPrecision),
		Leftmost:       geometry.PointInt{X: left.X, Y: left.Y},
		Rightmost:      geometry.PointInt{X: right.X, Y: right.Y},
		Topmost:        geometry.PointInt{X: top.X, Y: top.Y},
		Bottommost:     geometry.PointInt{X: bottom.X, Y: bottom.Y},
	}
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
