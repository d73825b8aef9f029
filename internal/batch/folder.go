// Package batch iterates a folder of micrographs, runs the adaptive
// measurement on each, and exports the collected statistics.
package batch

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// SortFolder lists the files of dir ordered by shot number: the integer
// before the first underscore of the filename. Directories and files
// without a numeric leader (stray exports, hidden files) are skipped, so a
// folder with one bad name does not abort the batch.
func SortFolder(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	type shot struct {
		name string
		num  int
	}
	shots := make([]shot, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lead, _, _ := strings.Cut(e.Name(), "_")
		n, err := strconv.Atoi(lead)
		if err != nil {
			continue
		}
		shots = append(shots, shot{name: e.Name(), num: n})
	}

	sort.Slice(shots, func(i, j int) bool {
		if shots[i].num != shots[j].num {
			return shots[i].num < shots[j].num
		}
		return shots[i].name < shots[j].name
	})

	names := make([]string, len(shots))
	for i, s := range shots {
		names[i] = s.name
	}
	return names, nil
}
