package segment

import (
	"gocv.io/x/gocv"
)

// BuildMask thresholds gray at level and returns a binary mask with the
// foreground polarity implied by mode: ModeDark marks pixels at or below the
// level as foreground (inverse binary threshold), any other mode marks
// pixels strictly above it. Pure function of its inputs; the caller owns the
// returned Mat.
func BuildMask(gray gocv.Mat, level float64, mode Mode) gocv.Mat {
	typ := gocv.ThresholdBinary
	if mode == ModeDark {
		typ = gocv.ThresholdBinaryInv
	}

	mask := gocv.NewMat()
	gocv.Threshold(gray, &mask, float32(level), 255, typ)
	return mask
}

// Grayscale converts a BGR frame to single-channel grayscale. Frames that
// are already single-channel are cloned unchanged.
func Grayscale(img gocv.Mat) gocv.Mat {
	if img.Channels() == 1 {
		return img.Clone()
	}
	gray := gocv.NewMat()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	return gray
}
