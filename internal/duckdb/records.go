package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/mavecheck/internal/dataset"
)

// RecordMatch pairs a stored variant record with its accession.
// Accessions take the form <score set urn>#<num>, numbered from 1 in
// upload order.
type RecordMatch struct {
	Accession string         `json:"accession"`
	URN       string         `json:"urn"`
	Record    dataset.Record `json:"record"`
}

// WriteRecords batch-inserts variant records for a score set using the
// Appender API. Records are numbered in slice order.
func (s *Store) WriteRecords(urn string, records []dataset.Record) error {
	if len(records) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variant_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i, rec := range records {
		scores, err := encodeData(rec.Data.Scores)
		if err != nil {
			return fmt.Errorf("encode scores for record %d: %w", i+1, err)
		}
		counts, err := encodeData(rec.Data.Counts)
		if err != nil {
			return fmt.Errorf("encode counts for record %d: %w", i+1, err)
		}
		if err := appender.AppendRow(
			fmt.Sprintf("%s#%d", urn, i+1), urn, int64(i+1),
			optional(rec.HGVSNt), optional(rec.HGVSSplice), optional(rec.HGVSPro),
			scores, counts,
		); err != nil {
			return fmt.Errorf("append variant record: %w", err)
		}
	}

	return appender.Flush()
}

// LookupRecords returns a score set's variant records in upload order.
func (s *Store) LookupRecords(urn string) ([]dataset.Record, error) {
	rows, err := s.db.Query(`SELECT
		accession, urn, hgvs_nt, hgvs_splice, hgvs_pro, scores, counts
		FROM variant_records
		WHERE urn=? ORDER BY num`, urn)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	matches, err := scanRecordMatches(rows)
	if err != nil {
		return nil, err
	}
	records := make([]dataset.Record, len(matches))
	for i, m := range matches {
		records[i] = m.Record
	}
	return records, nil
}

// SearchByHGVS returns every stored record defining the given variant
// in any of its HGVS columns, across all score sets.
func (s *Store) SearchByHGVS(hgvs string) ([]RecordMatch, error) {
	rows, err := s.db.Query(`SELECT
		accession, urn, hgvs_nt, hgvs_splice, hgvs_pro, scores, counts
		FROM variant_records
		WHERE hgvs_nt=? OR hgvs_splice=? OR hgvs_pro=?
		ORDER BY urn, num`, hgvs, hgvs, hgvs)
	if err != nil {
		return nil, fmt.Errorf("query by hgvs: %w", err)
	}
	defer rows.Close()

	return scanRecordMatches(rows)
}

// DeleteScoreSet removes a score set's records and its metadata row.
func (s *Store) DeleteScoreSet(urn string) error {
	if _, err := s.db.Exec("DELETE FROM variant_records WHERE urn=?", urn); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM score_sets WHERE urn=?", urn)
	return err
}

// scanRecordMatches scans rows into RecordMatch slices.
func scanRecordMatches(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]RecordMatch, error) {
	var matches []RecordMatch
	for rows.Next() {
		var m RecordMatch
		var nt, splice, pro sql.NullString
		var scores, counts string

		if err := rows.Scan(
			&m.Accession, &m.URN, &nt, &splice, &pro, &scores, &counts,
		); err != nil {
			return nil, fmt.Errorf("scan variant record: %w", err)
		}

		m.Record.HGVSNt = fromNullString(nt)
		m.Record.HGVSSplice = fromNullString(splice)
		m.Record.HGVSPro = fromNullString(pro)
		if err := json.Unmarshal([]byte(scores), &m.Record.Data.Scores); err != nil {
			return nil, fmt.Errorf("decode scores for %s: %w", m.Accession, err)
		}
		if err := json.Unmarshal([]byte(counts), &m.Record.Data.Counts); err != nil {
			return nil, fmt.Errorf("decode counts for %s: %w", m.Accession, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variant records: %w", err)
	}
	return matches, nil
}

func encodeData(m map[string]any) (string, error) {
	if m == nil {
		m = map[string]any{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
