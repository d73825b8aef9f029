package segment

import (
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// StripeStats estimates the local thickness of the segmented object along
// the vertical axis. For every column of the region-restricted mask it
// takes the longest contiguous foreground run, drops runs at or below
// minPlausiblePx, and returns the mean and population standard deviation of
// the survivors in micrometers. Returns (0, 0) when filtering leaves no
// samples, so batch pipelines keep running on degenerate frames.
//
// An equivalent formulation groups sorted contour points by x-coordinate
// and takes the maximum pairwise y-distance per group; the column scan is
// used because it also handles columns the simplified contour has no points
// in. stripeRunsFromContour keeps the legacy formulation for cross-checks.
func StripeStats(region gocv.Mat, calib float64, minPlausiblePx int) (avg, stdDev float64) {
	runs := columnRuns(region)

	kept := runs[:0]
	for _, r := range runs {
		if r > float64(minPlausiblePx) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return 0, 0
	}

	return stat.Mean(kept, nil) * calib, stat.PopStdDev(kept, nil) * calib
}

// columnRuns returns, per column with any foreground, the longest
// contiguous vertical run of foreground pixels.
func columnRuns(mask gocv.Mat) []float64 {
	rows, cols := mask.Rows(), mask.Cols()
	runs := make([]float64, 0, cols)

	for x := 0; x < cols; x++ {
		longest, current := 0, 0
		for y := 0; y < rows; y++ {
			if mask.GetUCharAt(y, x) > 0 {
				current++
				if current > longest {
					longest = current
				}
			} else {
				current = 0
			}
		}
		if longest > 0 {
			runs = append(runs, float64(longest))
		}
	}
	return runs
}

// stripeRunsFromContour derives per-column thickness from the contour
// itself: points sharing an x-coordinate contribute the maximum pairwise
// y-distance of that column. Agrees with columnRuns to within contour
// simplification noise; retained for compatibility testing only.
func stripeRunsFromContour(contour gocv.PointVector) []float64 {
	spans := map[int][2]int{}
	for i := 0; i < contour.Size(); i++ {
		p := contour.At(i)
		s, ok := spans[p.X]
		if !ok {
			spans[p.X] = [2]int{p.Y, p.Y}
			continue
		}
		if p.Y < s[0] {
			s[0] = p.Y
		}
		if p.Y > s[1] {
			s[1] = p.Y
		}
		spans[p.X] = s
	}

	runs := make([]float64, 0, len(spans))
	for _, s := range spans {
		if d := s[1] - s[0]; d > 0 {
			runs = append(runs, float64(d))
		}
	}
	return runs
}
