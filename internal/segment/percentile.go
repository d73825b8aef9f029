package segment

import (
	"sort"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// PercentileBrightness computes the given percentile of the grayscale
// intensity distribution, with linear interpolation between observations.
// In ModeBright the effective percentage is 100-percent, so a low requested
// percentage targets the bright tail of the histogram. The returned value
// is the next candidate threshold level.
func PercentileBrightness(gray gocv.Mat, percent float64, mode Mode) (float64, error) {
	rows, cols := gray.Rows(), gray.Cols()
	if rows == 0 || cols == 0 {
		return 0, ErrDegenerateGeometry
	}

	if mode == ModeBright {
		percent = 100 - percent
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	pixels := make([]float64, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixels = append(pixels, float64(gray.GetUCharAt(y, x)))
		}
	}
	sort.Float64s(pixels)

	return stat.Quantile(percent/100, stat.LinInterp, pixels, nil), nil
}
