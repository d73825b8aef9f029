// Package store persists measurement results and their annotated
// micrographs in a SQLite database, matching the layout of the lab's
// ILT_data_base file: one row per shot with the frame as a BLOB.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/badmax333/LaserProcessing/internal/segment"
)

const schema = `
CREATE TABLE IF NOT EXISTS microscope_results (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name     TEXT NOT NULL,
	width_um      REAL NOT NULL,
	length_um     REAL NOT NULL,
	avg_stripe_um REAL NOT NULL,
	stripe_std_um REAL NOT NULL,
	black_level   REAL NOT NULL,
	mode          TEXT NOT NULL,
	micro_photo   BLOB,
	created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// Row is one stored measurement, without the photo blob.
type Row struct {
	ID          int64
	FileName    string
	WidthUm     float64
	LengthUm    float64
	AvgStripeUm float64
	StripeStdUm float64
	BlackLevel  float64
	Mode        string
	CreatedAt   string
}

// Photo is one stored annotated micrograph.
type Photo struct {
	FileName string
	Data     []byte
}

// Open opens (or creates) the database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult inserts one measurement together with its annotated frame.
func (s *Store) SaveResult(fileName string, res *segment.Result) error {
	_, err := s.db.Exec(`
		INSERT INTO microscope_results
			(file_name, width_um, length_um, avg_stripe_um, stripe_std_um, black_level, mode, micro_photo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		fileName, res.PhysicalWidth, res.PhysicalLength,
		res.AvgStripeWidth, res.StripeStdDev,
		res.Level, res.Mode.String(), res.Annotated)
	if err != nil {
		return fmt.Errorf("insert result for %s: %w", fileName, err)
	}
	return nil
}

// Results returns every stored measurement row, oldest first.
func (s *Store) Results() ([]Row, error) {
	rows, err := s.db.Query(`
		SELECT id, file_name, width_um, length_um, avg_stripe_um, stripe_std_um,
		       black_level, mode, created_at
		FROM microscope_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.FileName, &r.WidthUm, &r.LengthUm,
			&r.AvgStripeUm, &r.StripeStdUm, &r.BlackLevel, &r.Mode, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Photos returns every stored annotated micrograph, oldest first.
func (s *Store) Photos() ([]Photo, error) {
	rows, err := s.db.Query(`SELECT file_name, micro_photo FROM microscope_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	var out []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.FileName, &p.Data); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
