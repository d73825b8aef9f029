package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/badmax333/LaserProcessing/internal/imgprep"
	"github.com/badmax333/LaserProcessing/internal/segment"
)

// Record is the outcome for one micrograph. Exactly one of Result and Err
// is set; failed shots stay in the slice so callers can report them, but
// they are excluded from aggregate statistics.
type Record struct {
	File   string
	Result *segment.Result
	Err    error
}

// Runner measures every micrograph in a folder sequentially.
type Runner struct {
	params  segment.Params
	log     zerolog.Logger
	saveDir string
}

// NewRunner creates a runner with the given engine parameters.
func NewRunner(params segment.Params, log zerolog.Logger) *Runner {
	return &Runner{params: params, log: log}
}

// WithSaveDir makes the runner write each annotated frame into dir, named
// after its source file.
func (r *Runner) WithSaveDir(dir string) *Runner {
	r.saveDir = dir
	return r
}

// Run measures every shot in dir in shot-number order. A failure on one
// image is recorded against that image and the batch continues.
func (r *Runner) Run(dir string) ([]Record, error) {
	files, err := SortFolder(dir)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(files))
	for i, name := range files {
		res, err := r.processOne(filepath.Join(dir, name))
		records = append(records, Record{File: name, Result: res, Err: err})

		if err != nil {
			r.log.Error().Err(err).Str("file", name).Msg("measurement failed")
			continue
		}
		r.log.Info().
			Int("done", i+1).
			Int("total", len(files)).
			Str("file", name).
			Int("width_px", res.PixelWidth).
			Float64("width_um", res.PhysicalWidth).
			Msg("photo measured")
	}
	return records, nil
}

func (r *Runner) processOne(path string) (*segment.Result, error) {
	img, err := imgprep.Load(path)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	roi, err := imgprep.CropCenterSquare(img)
	if err != nil {
		return nil, err
	}
	defer roi.Close()

	res, err := segment.AdaptiveMeasure(roi, r.params)
	if err != nil {
		return nil, err
	}

	if r.saveDir != "" {
		out := filepath.Join(r.saveDir, filepath.Base(path))
		if err := os.WriteFile(out, res.Annotated, 0o644); err != nil {
			return nil, fmt.Errorf("save annotated frame: %w", err)
		}
	}
	return res, nil
}
