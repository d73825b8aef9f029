package segment

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Segment runs one segmentation pass over a frame at a fixed threshold
// level: binarize, extract contours, select the most extreme region,
// measure its extent and stripe statistics, and annotate the frame.
// Returns ErrRegionNotFound when the mask yields no contours.
func Segment(img gocv.Mat, level float64, mode Mode, p Params) (*Result, error) {
	if img.Rows() == 0 || img.Cols() == 0 {
		return nil, ErrDegenerateGeometry
	}

	gray := Grayscale(img)
	defer gray.Close()

	mask := BuildMask(gray, level, mode)
	defer mask.Close()

	contours := ExtractContours(mask)
	defer contours.Close()

	idx, err := SelectRegion(contours, gray, mode)
	if err != nil {
		return nil, err
	}

	m := Measure(contours.At(idx), p.Calib)

	region := RegionMask(mask, contours, idx)
	defer region.Close()
	avg, stdDev := StripeStats(region, p.Calib, p.MinStripePx)

	annotated, err := Annotate(img, contours, idx, m)
	if err != nil {
		return nil, fmt.Errorf("segment at level %.0f: %w", level, err)
	}

	return &Result{
		Measurement:    m,
		AvgStripeWidth: avg,
		StripeStdDev:   stdDev,
		Level:          level,
		Mode:           mode,
		Annotated:      annotated,
	}, nil
}
