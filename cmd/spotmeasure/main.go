// Command spotmeasure measures the laser spot in a single micrograph and
// outputs the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/badmax333/LaserProcessing/internal/imgprep"
	"github.com/badmax333/LaserProcessing/internal/segment"
)

func main() {
	imagePath := flag.String("image", "", "Path to micrograph (TIFF, PNG, or JPEG)")
	calib := flag.Float64("calib", segment.DefaultParams().Calib, "Micrometers per pixel")
	mode := flag.String("mode", "auto", "Segmentation mode: auto, dark, or bright")
	level := flag.Float64("level", -1, "Fixed threshold level 0-255 (requires -mode dark or bright)")
	crop := flag.Bool("crop", true, "Crop the standard region of interest before measuring")
	out := flag.String("out", "", "Write the annotated frame to this path")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: spotmeasure -image <path> [-calib 0.5383699] [-mode auto|dark|bright] [-level N] [-out annotated.jpg]")
		os.Exit(1)
	}

	img, err := imgprep.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	defer img.Close()
	fmt.Printf("Loaded image: %dx%d pixels\n", img.Cols(), img.Rows())

	frame := img
	if *crop {
		roi, err := imgprep.CropCenterSquare(img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to crop region of interest: %v\n", err)
			os.Exit(1)
		}
		defer roi.Close()
		frame = roi
		fmt.Printf("Region of interest: %dx%d pixels\n", roi.Cols(), roi.Rows())
	}

	params := segment.DefaultParams().WithCalib(*calib)
	fmt.Printf("Calibration: %.7f um/px, width bound %d px, stripe floor %d px\n",
		params.Calib, params.MaxWidthPx, params.MinStripePx)

	var result *segment.Result
	if *mode == "auto" {
		result, err = segment.AdaptiveMeasure(frame, params)
	} else {
		fixedMode, ok := segment.ParseMode(*mode)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown mode %q: want auto, dark, or bright\n", *mode)
			os.Exit(1)
		}
		if *level < 0 || *level > 255 {
			fmt.Fprintln(os.Stderr, "Fixed-mode runs need -level in 0-255")
			os.Exit(1)
		}
		result, err = segment.Segment(frame, *level, fixedMode, params)
	}
	if err != nil {
		if errors.Is(err, segment.ErrRegionNotFound) {
			fmt.Fprintln(os.Stderr, "No region found: the frame has no object matching the requested polarity")
		} else {
			fmt.Fprintf(os.Stderr, "Measurement failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("\nResult (mode %s, level %.0f):\n", result.Mode, result.Level)
	fmt.Printf("%-22s %10s %14s\n", "", "pixels", "micrometers")
	fmt.Printf("%-22s %10d %14.5f\n", "Width", result.PixelWidth, result.PhysicalWidth)
	fmt.Printf("%-22s %10d %14.5f\n", "Length", result.PixelLength, result.PhysicalLength)
	fmt.Printf("%-22s %10s %14.5f\n", "Avg stripe width", "-", result.AvgStripeWidth)
	fmt.Printf("%-22s %10s %14.5f\n", "Stripe std dev", "-", result.StripeStdDev)

	if *out != "" {
		if err := os.WriteFile(*out, result.Annotated, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write annotated frame: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nAnnotated frame written to %s\n", *out)
	}
}
