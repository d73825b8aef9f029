package segment

import (
	"image/color"

	"gocv.io/x/gocv"
)

// ExtractContours returns the boundary curves of all connected foreground
// components in mask, with full hierarchy topology (nested regions allowed)
// and simplified point chains (collinear runs collapsed). The caller owns
// the returned vector and must Close it.
func ExtractContours(mask gocv.Mat) gocv.PointsVector {
	hierarchy := gocv.NewMat()
	defer hierarchy.Close()
	return gocv.FindContoursWithParams(mask, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxSimple)
}

// SelectRegion picks the index of the contour whose enclosed mean grayscale
// intensity is most extreme: minimum for ModeDark, maximum otherwise.
// Ties are broken by lowest contour index (strict comparison keeps the
// first encountered winner). Returns ErrRegionNotFound for an empty set.
func SelectRegion(contours gocv.PointsVector, gray gocv.Mat, mode Mode) (int, error) {
	best := -1
	var bestMean float64

	for i := 0; i < contours.Size(); i++ {
		mask := gocv.NewMatWithSize(gray.Rows(), gray.Cols(), gocv.MatTypeCV8U)
		gocv.DrawContours(&mask, contours, i, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
		mean := gray.MeanWithMask(mask).Val1
		mask.Close()

		if best == -1 {
			best = i
			bestMean = mean
			continue
		}
		if mode == ModeDark && mean < bestMean {
			best = i
			bestMean = mean
		} else if mode == ModeBright && mean > bestMean {
			best = i
			bestMean = mean
		}
	}

	if best == -1 {
		return -1, ErrRegionNotFound
	}
	return best, nil
}

// RegionMask restricts mask to the filled interior of one contour: the
// result is foreground only where both the contour interior and the source
// mask are foreground. The caller owns the returned Mat.
func RegionMask(mask gocv.Mat, contours gocv.PointsVector, idx int) gocv.Mat {
	filled := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)
	defer filled.Close()
	gocv.DrawContours(&filled, contours, idx, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)

	region := gocv.NewMat()
	gocv.BitwiseAnd(mask, filled, &region)
	return region
}
