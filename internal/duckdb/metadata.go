package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileFingerprint holds stat-based identity for a source file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// ScoreSetInfo records one ingestion: which files the records came
// from, when they were loaded, and how many records were produced.
// CountsFile is zero when no counts file was uploaded.
type ScoreSetInfo struct {
	URN         string
	RunID       string
	TargetName  string
	CreatedAt   time.Time
	ScoresFile  FileFingerprint
	CountsFile  FileFingerprint
	RecordCount int64
}

// NewScoreSetInfo stamps a fresh ingestion record for a URN.
func NewScoreSetInfo(urn, targetName string) ScoreSetInfo {
	return ScoreSetInfo{
		URN:        urn,
		RunID:      uuid.NewString(),
		TargetName: targetName,
		CreatedAt:  time.Now(),
	}
}

// SaveScoreSet inserts or replaces the metadata row for a score set.
func (s *Store) SaveScoreSet(info ScoreSetInfo) error {
	var countsPath, countsSize, countsMod any
	if info.CountsFile.Path != "" {
		countsPath = info.CountsFile.Path
		countsSize = info.CountsFile.Size
		countsMod = info.CountsFile.ModTime
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO score_sets (
		urn, run_id, target_name, created_at,
		scores_path, scores_size, scores_modified,
		counts_path, counts_size, counts_modified,
		record_count
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.URN, info.RunID, info.TargetName, info.CreatedAt,
		info.ScoresFile.Path, info.ScoresFile.Size, info.ScoresFile.ModTime,
		countsPath, countsSize, countsMod,
		info.RecordCount)
	if err != nil {
		return fmt.Errorf("save score set: %w", err)
	}
	return nil
}

// GetScoreSet returns the metadata row for a URN, or nil when the URN
// has not been ingested.
func (s *Store) GetScoreSet(urn string) (*ScoreSetInfo, error) {
	rows, err := s.db.Query(scoreSetSelect+" WHERE urn=?", urn)
	if err != nil {
		return nil, fmt.Errorf("query score set: %w", err)
	}
	defer rows.Close()

	infos, err := scanScoreSets(rows)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}
	return &infos[0], nil
}

// ListScoreSets returns metadata for every ingested score set, oldest
// first.
func (s *Store) ListScoreSets() ([]ScoreSetInfo, error) {
	rows, err := s.db.Query(scoreSetSelect + " ORDER BY created_at, urn")
	if err != nil {
		return nil, fmt.Errorf("query score sets: %w", err)
	}
	defer rows.Close()

	return scanScoreSets(rows)
}

const scoreSetSelect = `SELECT
	urn, run_id, target_name, created_at,
	scores_path, scores_size, scores_modified,
	counts_path, counts_size, counts_modified,
	record_count
	FROM score_sets`

func scanScoreSets(rows *sql.Rows) ([]ScoreSetInfo, error) {
	var infos []ScoreSetInfo
	for rows.Next() {
		var info ScoreSetInfo
		var target sql.NullString
		var countsPath sql.NullString
		var countsSize sql.NullInt64
		var countsMod sql.NullTime

		if err := rows.Scan(
			&info.URN, &info.RunID, &target, &info.CreatedAt,
			&info.ScoresFile.Path, &info.ScoresFile.Size, &info.ScoresFile.ModTime,
			&countsPath, &countsSize, &countsMod,
			&info.RecordCount,
		); err != nil {
			return nil, fmt.Errorf("scan score set: %w", err)
		}

		info.TargetName = target.String
		if countsPath.Valid {
			info.CountsFile = FileFingerprint{
				Path:    countsPath.String,
				Size:    countsSize.Int64,
				ModTime: countsMod.Time,
			}
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score sets: %w", err)
	}
	return infos, nil
}
