package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// SetSize is the number of consecutive shots forming one experiment set;
// the exported tables carry one set per row.
const SetSize = 4

// GroupRecords chunks the successful records into sets of SetSize in batch
// order. The final set may be partial; failed records are dropped.
func GroupRecords(records []Record) [][]Record {
	var sets [][]Record
	var current []Record
	for _, rec := range records {
		if rec.Err != nil {
			continue
		}
		current = append(current, rec)
		if len(current) == SetSize {
			sets = append(sets, current)
			current = nil
		}
	}
	if len(current) > 0 {
		sets = append(sets, current)
	}
	return sets
}

// ExportCSV writes the three result tables into dir: pixel widths, average
// stripe widths, and stripe standard deviations, one experiment set per
// row with SetSize value columns plus a leading row index.
func ExportCSV(records []Record, dir string) error {
	sets := GroupRecords(records)

	widths := func(rec Record) string { return strconv.Itoa(rec.Result.PixelWidth) }
	avgs := func(rec Record) string { return formatFloat(rec.Result.AvgStripeWidth) }
	stds := func(rec Record) string { return formatFloat(rec.Result.StripeStdDev) }

	if err := writeTable(filepath.Join(dir, "segmen_result.csv"), "width", sets, widths); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, "avg_segmen_result.csv"), "avg_width", sets, avgs); err != nil {
		return err
	}
	return writeTable(filepath.Join(dir, "std_div_segmen_result.csv"), "std_div", sets, stds)
}

func writeTable(path, column string, sets [][]Record, value func(Record) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, 0, SetSize+1)
	header = append(header, "")
	for i := 0; i < SetSize; i++ {
		header = append(header, fmt.Sprintf("%s_%d", column, i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, set := range sets {
		row := make([]string, SetSize+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < SetSize; j++ {
			if j < len(set) {
				row[j+1] = value(set[j])
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}
