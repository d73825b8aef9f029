// Command massrun measures every micrograph in a folder, exports the
// result tables as CSV, and optionally stores annotated frames in the
// results database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/badmax333/LaserProcessing/internal/batch"
	"github.com/badmax333/LaserProcessing/internal/segment"
	"github.com/badmax333/LaserProcessing/internal/store"
	"github.com/badmax333/LaserProcessing/internal/version"
)

func main() {
	dir := flag.String("dir", "", "Folder of micrographs, named <shot>_*.jpg")
	csvDir := flag.String("csv", ".", "Directory the CSV tables are written to")
	dbPath := flag.String("db", "", "Optional SQLite results database")
	saveDir := flag.String("save", "", "Optional directory for annotated frames")
	calib := flag.Float64("calib", segment.DefaultParams().Calib, "Micrometers per pixel")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *dir == "" {
		fmt.Println("Usage: massrun -dir <folder> [-csv out] [-db results.db] [-save annotated] [-calib 0.5383699]")
		os.Exit(1)
	}

	log.Info().
		Str("version", version.Version).
		Str("dir", *dir).
		Float64("calib", *calib).
		Msg("starting batch run")

	runner := batch.NewRunner(segment.DefaultParams().WithCalib(*calib), log)
	if *saveDir != "" {
		if err := os.MkdirAll(*saveDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("create save directory")
		}
		runner = runner.WithSaveDir(*saveDir)
	}

	records, err := runner.Run(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}

	ok, failed := 0, 0
	for _, rec := range records {
		if rec.Err != nil {
			failed++
		} else {
			ok++
		}
	}

	if err := batch.ExportCSV(records, *csvDir); err != nil {
		log.Fatal().Err(err).Msg("CSV export failed")
	}
	log.Info().Str("dir", *csvDir).Msg("result tables written")

	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open results database")
		}
		defer db.Close()

		for _, rec := range records {
			if rec.Err != nil {
				continue
			}
			if err := db.SaveResult(rec.File, rec.Result); err != nil {
				log.Error().Err(err).Str("file", rec.File).Msg("store failed")
			}
		}
		log.Info().Str("db", *dbPath).Int("rows", ok).Msg("results stored")
	}

	log.Info().Int("measured", ok).Int("failed", failed).Msg("batch finished")
}
