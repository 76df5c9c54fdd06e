// Package duckdb persists validated variant records and score set
// ingestion metadata in a DuckDB database (queryable, append-only).
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding variant records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS score_sets (
		urn VARCHAR PRIMARY KEY,
		run_id VARCHAR,
		target_name VARCHAR,
		created_at TIMESTAMP,
		scores_path VARCHAR,
		scores_size BIGINT,
		scores_modified TIMESTAMP,
		counts_path VARCHAR,
		counts_size BIGINT,
		counts_modified TIMESTAMP,
		record_count BIGINT
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS variant_records (
		accession VARCHAR,
		urn VARCHAR,
		num BIGINT,
		hgvs_nt VARCHAR,
		hgvs_splice VARCHAR,
		hgvs_pro VARCHAR,
		scores VARCHAR,
		counts VARCHAR,
		PRIMARY KEY (urn, num)
	)`)
	return err
}
