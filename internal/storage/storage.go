// Package storage archives pipeline runs in SQLite so successive
// survey extractions can be compared: per-run respondent totals,
// per-field table sizes, and flagged duplicate pairs.
//
// The archive is append-only bookkeeping; the published report never
// reads from it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lesswrong-ru/surveyctl/internal/dedup"
	"github.com/lesswrong-ru/surveyctl/internal/report"
)

// Store is the SQLite-backed run archive.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the archive at path.
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(sqlSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one assembled report: the run manifest plus one row
// per field with its table sizes.
func (s *Store) SaveRun(ctx context.Context, rep *report.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, total, warnings) VALUES (?, ?, ?, ?)`,
		rep.RunID, rep.CreatedAt, rep.Total, strings.Join(rep.Warnings, "\n"))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, key := range rep.Columns {
		fr := rep.Data[key]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_fields (run_id, field_key, answered, main_buckets, other_values)
			 VALUES (?, ?, ?, ?, ?)`,
			rep.RunID, key, fr.Answered, len(fr.Values), len(fr.OtherValues))
		if err != nil {
			return fmt.Errorf("failed to insert field %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// SaveFindings records duplicate-detector findings under a run.
func (s *Store) SaveFindings(ctx context.Context, runID string, findings []dedup.Finding) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, f := range findings {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO dup_findings
			 (run_id, row_i, row_j, stamp_a, stamp_b, equal_count, diff_count, empty_both, empty_a, empty_b)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, f.I, f.J, f.StampA, f.StampB,
			f.Score.Equal, f.Score.Different, f.Score.EmptyBoth, f.Score.EmptyA, f.Score.EmptyB)
		if err != nil {
			return fmt.Errorf("failed to insert finding (%d, %d): %w", f.I, f.J, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit findings: %w", err)
	}
	return nil
}

// RunSummary is one archived run.
type RunSummary struct {
	RunID     string
	CreatedAt time.Time
	Total     int
	Fields    int
	Findings  int
}

// ListRuns returns archived runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.run_id, r.created_at, r.total,
		       (SELECT COUNT(*) FROM run_fields f WHERE f.run_id = r.run_id),
		       (SELECT COUNT(*) FROM dup_findings d WHERE d.run_id = r.run_id)
		FROM runs r
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		if err := rows.Scan(&rs.RunID, &rs.CreatedAt, &rs.Total, &rs.Fields, &rs.Findings); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return out, nil
}

// FindingsForRun returns the archived duplicate findings of one run.
func (s *Store) FindingsForRun(ctx context.Context, runID string) ([]dedup.Finding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_i, row_j, stamp_a, stamp_b, equal_count, diff_count, empty_both, empty_a, empty_b
		FROM dup_findings WHERE run_id = ? ORDER BY row_i, row_j`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query findings: %w", err)
	}
	defer rows.Close()

	var out []dedup.Finding
	for rows.Next() {
		var f dedup.Finding
		if err := rows.Scan(&f.I, &f.J, &f.StampA, &f.StampB,
			&f.Score.Equal, &f.Score.Different, &f.Score.EmptyBoth, &f.Score.EmptyA, &f.Score.EmptyB); err != nil {
			return nil, fmt.Errorf("failed to scan finding: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate findings: %w", err)
	}
	return out, nil
}
