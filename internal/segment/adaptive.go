package segment

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// AdaptiveMeasure searches for a threshold level that keeps the detected
// object within the acceptance bound. The initial level is the median
// brightness of the frame, probed in dark mode. While the measured width
// exceeds MaxWidthPx the level drops by 1 and the probe repeats; when the
// initial dark probe is already in bound the run switches to bright mode
// (threshold recomputed from the bright tail) and drops the level by 2 per
// retry instead.
//
// The returned result is the one cached before the loop's terminating
// probe, not the terminating probe itself. This keep-previous policy is the
// acceptance criterion of the reference calibration and is deliberate; do
// not replace it with the final probe.
//
// The level range [0, 255] and MaxIterations bound the loop; exhaustion is
// reported as ErrNoConvergence. A probe that finds no region mid-loop ends
// the search and the cached result stands.
func AdaptiveMeasure(img gocv.Mat, p Params) (*Result, error) {
	gray := Grayscale(img)
	defer gray.Close()

	level, err := PercentileBrightness(gray, p.InitialPercent, ModeDark)
	if err != nil {
		return nil, err
	}

	res, err := Segment(img, level, ModeDark, p)
	if err != nil {
		return nil, fmt.Errorf("initial probe at level %.0f: %w", level, err)
	}
	prev := res

	if res.PixelWidth > p.MaxWidthPx {
		return refine(img, p, res, level, ModeDark, 1)
	}

	// Initial dark probe already in bound: probe the bright tail. If the
	// bright probe never exceeds the bound, prev still holds the dark
	// result and is what gets reported.
	level, err = PercentileBrightness(gray, p.InitialPercent, ModeBright)
	if err != nil {
		return nil, err
	}
	res, err = Segment(img, level, ModeBright, p)
	if err != nil {
		if errors.Is(err, ErrRegionNotFound) {
			return prev, nil
		}
		return nil, fmt.Errorf("bright probe at level %.0f: %w", level, err)
	}
	if res.PixelWidth <= p.MaxWidthPx {
		return prev, nil
	}
	return refine(img, p, res, level, ModeBright, 2)
}

// refine lowers the threshold level stepwise while the measured width stays
// above the bound, caching the previous probe before each overwrite.
func refine(img gocv.Mat, p Params, res *Result, level float64, mode Mode, step float64) (*Result, error) {
	prev := res
	for i := 0; res.PixelWidth > p.MaxWidthPx; i++ {
		if i >= p.MaxIterations {
			return nil, fmt.Errorf("%w: %d iterations in %s mode", ErrNoConvergence, i, mode)
		}
		prev = res
		level -= step
		if level < 0 || level > 255 {
			return nil, fmt.Errorf("%w: level %.0f out of range in %s mode", ErrNoConvergence, level, mode)
		}

		var err error
		res, err = Segment(img, level, mode, p)
		if err != nil {
			if errors.Is(err, ErrRegionNotFound) {
				// The tightened threshold erased the object; the last
				// cached probe is the best available answer.
				return prev, nil
			}
			return nil, err
		}
	}
	return prev, nil
}
