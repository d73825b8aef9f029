// Package segment implements the adaptive segmentation and measurement
// engine for laser spot micrographs. Given a grayscale region of interest
// it binarizes the frame at a brightness threshold, picks the most extreme
// connected region (darkest or brightest), measures its bounding extent and
// per-column stripe width, and converts pixel values to micrometers.
package segment

import (
	"errors"

	"github.com/badmax333/LaserProcessing/pkg/geometry"
)

// Mode selects the polarity of the object of interest: a dark spot on a
// light background, or a light spot on a dark background.
type Mode int

const (
	// ModeDark segments an object darker than its surroundings.
	ModeDark Mode = iota
	// ModeBright segments an object brighter than its surroundings.
	ModeBright
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeBright {
		return "bright"
	}
	return "dark"
}

// ParseMode converts a mode name to a Mode. The second return value is
// false for names other than "dark" and "bright", so callers can reject
// typos instead of silently running dark mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "dark":
		return ModeDark, true
	case "bright":
		return ModeBright, true
	}
	return ModeDark, false
}

var (
	// ErrRegionNotFound is returned when no contour satisfies the
	// selection criterion (empty contour set or degenerate mask).
	ErrRegionNotFound = errors.New("segment: region not found")

	// ErrDegenerateGeometry is returned for images whose dimensions make
	// the requested operation impossible (zero width or height).
	ErrDegenerateGeometry = errors.New("segment: degenerate image geometry")

	// ErrNoConvergence is returned when the adaptive threshold loop
	// exhausts its level range without the measured width falling under
	// the acceptance bound.
	ErrNoConvergence = errors.New("segment: adaptive threshold did not converge")
)

// Params holds the calibration and tuning constants of the engine.
type Params struct {
	// Calib converts pixels to micrometers.
	Calib float64

	// MaxWidthPx is the acceptance bound of the adaptive threshold loop:
	// the loop keeps lowering the level while the measured pixel width
	// stays above it.
	MaxWidthPx int

	// MinStripePx is the plausibility floor for per-column stripe runs.
	// Runs at or below it are excluded from the stripe statistics.
	MinStripePx int

	// InitialPercent is the brightness percentile used for the first
	// threshold probe.
	InitialPercent float64

	// MaxIterations caps the adaptive loop regardless of level range.
	MaxIterations int
}

// DefaultParams returns parameters tuned for the reference microscope setup.
func DefaultParams() Params {
	return Params{
		// Micrometers per pixel for the reference objective.
		Calib: 0.5383699,

		// Spots wider than 30 px indicate the threshold still captures
		// background; the adaptive loop tightens until this holds.
		MaxWidthPx: 30,

		// 60 px ~ 25 um, below the smallest physically meaningful spot
		// diameter for the instrument.
		MinStripePx: 60,

		InitialPercent: 50,
		MaxIterations:  512,
	}
}

// WithCalib returns a copy of params with a different calibration constant.
func (p Params) WithCalib(calib float64) Params {
	p.Calib = calib
	return p
}

// WithMaxWidth returns a copy of params with a different acceptance bound.
func (p Params) WithMaxWidth(px int) Params {
	p.MaxWidthPx = px
	return p
}

// WithStripeFloor returns a copy of params with a different plausibility
// floor for stripe runs.
func (p Params) WithStripeFloor(px int) Params {
	p.MinStripePx = px
	return p
}

// Measurement holds the bounding extent of a selected region, in pixels and
// micrometers, together with the extremal contour points that produced it.
type Measurement struct {
	PixelWidth  int // bottommost.Y - topmost.Y
	PixelLength int // rightmost.X - leftmost.X

	PhysicalWidth  float64 // micrometers
	PhysicalLength float64 // micrometers

	Leftmost   geometry.PointInt
	Rightmost  geometry.PointInt
	Topmost    geometry.PointInt
	Bottommost geometry.PointInt
}

// Result is the outcome of one successful segmentation. It is immutable
// after construction; the annotated frame is owned by the caller.
type Result struct {
	Measurement

	// AvgStripeWidth and StripeStdDev are the mean and population
	// standard deviation of the per-column stripe widths, in micrometers.
	AvgStripeWidth float64
	StripeStdDev   float64

	// Level is the threshold the result was obtained at; Mode is the
	// polarity used.
	Level float64
	Mode  Mode

	// Annotated is the source frame with the winning contour and the
	// measured dimensions drawn on it, JPEG-encoded.
	Annotated []byte
}
