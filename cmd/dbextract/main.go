// Command dbextract lists the stored measurement rows of a results
// database and dumps the annotated micrographs back to JPEG files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/badmax333/LaserProcessing/internal/store"
)

func main() {
	dbPath := flag.String("db", "ILT_data_base.db", "SQLite results database")
	outDir := flag.String("out", "", "Directory the stored photos are dumped to (omit to list only)")
	flag.Parse()

	db, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	rows, err := db.Results()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-24s %12s %12s %12s %12s %8s %8s\n",
		"ID", "File", "Width um", "Length um", "AvgStripe", "StripeStd", "Level", "Mode")
	for _, r := range rows {
		fmt.Printf("%-6d %-24s %12.5f %12.5f %12.5f %12.5f %8.0f %8s\n",
			r.ID, r.FileName, r.WidthUm, r.LengthUm, r.AvgStripeUm, r.StripeStdUm, r.BlackLevel, r.Mode)
	}
	fmt.Printf("\nTotal: %d rows\n", len(rows))

	if *outDir == "" {
		return
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	photos, err := db.Photos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read photos: %v\n", err)
		os.Exit(1)
	}
	for _, p := range photos {
		if len(p.Data) == 0 {
			continue
		}
		out := filepath.Join(*outDir, p.FileName)
		if err := os.WriteFile(out, p.Data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", out, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Dumped %d photos to %s\n", len(photos), *outDir)
}
