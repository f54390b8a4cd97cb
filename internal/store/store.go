// Package store persists ingested real-estate records in a DuckDB
// database so loaded datasets survive between CLI invocations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// Store manages all data persistence via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "realestate.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	if _, err := s.DB.Exec("CREATE SEQUENCE IF NOT EXISTS records_seq"); err != nil {
		return fmt.Errorf("creating sequence: %w", err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY DEFAULT nextval('records_seq'),
			year INTEGER NOT NULL,
			area TEXT NOT NULL,
			price DOUBLE NOT NULL,
			demand DOUBLE NOT NULL,
			size DOUBLE NOT NULL,
			UNIQUE (year, area)
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// WriteRecords replaces the stored dataset with the given records.
// sourceFile names where the records were ingested from.
func (s *Store) WriteRecords(records []model.Record, sourceFile string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO records (year, area, price, demand, size) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Collapse duplicate (year, area) pairs last-write-wins before
	// inserting, matching the dataset snapshot's invariant.
	type key struct {
		year int
		area string
	}
	seen := make(map[key]int)
	deduped := make([]model.Record, 0, len(records))
	for _, rec := range records {
		k := key{rec.Year, rec.Area}
		if idx, ok := seen[k]; ok {
			deduped[idx] = rec
			continue
		}
		seen[k] = len(deduped)
		deduped = append(deduped, rec)
	}

	for _, rec := range deduped {
		if _, err := stmt.Exec(rec.Year, rec.Area, rec.Price, rec.Demand, rec.Size); err != nil {
			return fmt.Errorf("inserting record %s/%d: %w", rec.Area, rec.Year, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('loaded_at', ?)", now); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('source_file', ?)", sourceFile); err != nil {
		return err
	}

	return tx.Commit()
}

// ReadRecords loads all records in insertion order.
func (s *Store) ReadRecords() ([]model.Record, error) {
	rows, err := s.DB.Query("SELECT year, area, price, demand, size FROM records ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.Year, &rec.Area, &rec.Price, &rec.Demand, &rec.Size); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecordCount returns the total number of stored records.
func (s *Store) RecordCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	return n
}

// AreaStats summarizes one area's stored rows for status output.
type AreaStats struct {
	Area      string
	Records   int
	FirstYear int
	LastYear  int
}

// StatsByArea returns per-area record counts and year ranges, ordered by
// first insertion.
func (s *Store) StatsByArea() ([]AreaStats, error) {
	rows, err := s.DB.Query(`SELECT area, COUNT(*), MIN(year), MAX(year)
		FROM records GROUP BY area ORDER BY MIN(id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AreaStats
	for rows.Next() {
		var st AreaStats
		if err := rows.Scan(&st.Area, &st.Records, &st.FirstYear, &st.LastYear); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// LoadedAt returns when the dataset was last written, or "" if never.
func (s *Store) LoadedAt() string {
	var v sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'loaded_at'").Scan(&v)
	return v.String
}

// SourceFile returns the file the dataset was ingested from, or "".
func (s *Store) SourceFile() string {
	var v sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'source_file'").Scan(&v)
	return v.String
}
