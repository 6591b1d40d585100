package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Page status values for crawl_pages.status.
const (
	StatusParsed    = "parsed"
	StatusDuplicate = "duplicate"
	StatusFailed    = "failed"
)

// Run is one crawl of one site.
type Run struct {
	RunID           int64
	BaseURL         string
	StartedAt       time.Time
	FinishedAt      time.Time
	DiscoveredCount int
	ParsedCount     int
	DuplicateCount  int
	FailedCount     int
	Language        string
}

// InsertRun records the start of a crawl and returns its ID.
func (db *DB) InsertRun(baseURL string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO crawl_runs (base_url)
		VALUES (?)
	`, baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun closes out a run with its final counts and detected language.
func (db *DB) FinishRun(runID int64, discovered, parsed, duplicates, failed int, language string) error {
	_, err := db.Exec(`
		UPDATE crawl_runs
		SET finished_at = CURRENT_TIMESTAMP,
		    discovered_count = ?, parsed_count = ?, duplicate_count = ?, failed_count = ?,
		    language = ?
		WHERE run_id = ?
	`, discovered, parsed, duplicates, failed, language, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// InsertPage records one page outcome for a run. The same URL is journaled
// at most once per run.
func (db *DB) InsertPage(runID int64, url, status, contentHash, slug string, componentCount int) error {
	_, err := db.Exec(`
		INSERT OR IGNORE INTO crawl_pages (run_id, url, status, content_hash, page_slug, component_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, url, status, contentHash, slug, componentCount)
	if err != nil {
		return fmt.Errorf("failed to insert page for run %d: %w", runID, err)
	}
	return nil
}

// RunSummary retrieves a run by its ID.
func (db *DB) RunSummary(runID int64) (*Run, error) {
	var r Run
	var finished sql.NullTime
	var language sql.NullString
	err := db.QueryRow(`
		SELECT run_id, base_url, started_at, finished_at,
		       discovered_count, parsed_count, duplicate_count, failed_count, language
		FROM crawl_runs
		WHERE run_id = ?
	`, runID).Scan(
		&r.RunID,
		&r.BaseURL,
		&r.StartedAt,
		&finished,
		&r.DiscoveredCount,
		&r.ParsedCount,
		&r.DuplicateCount,
		&r.FailedCount,
		&language,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if finished.Valid {
		r.FinishedAt = finished.Time
	}
	if language.Valid {
		r.Language = language.String
	}
	return &r, nil
}

// ListRuns retrieves runs ordered by most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, base_url, started_at, finished_at,
		       discovered_count, parsed_count, duplicate_count, failed_count, language
		FROM crawl_runs
		ORDER BY started_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		var language sql.NullString
		if err := rows.Scan(&r.RunID, &r.BaseURL, &r.StartedAt, &finished,
			&r.DiscoveredCount, &r.ParsedCount, &r.DuplicateCount, &r.FailedCount, &language); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		if language.Valid {
			r.Language = language.String
		}
		runs = append(runs, r)
	}

	return runs, nil
}

// PageRecord is one journaled page outcome.
type PageRecord struct {
	URL            string
	Status         string
	Slug           string
	ComponentCount int
}

// RunPages retrieves every page outcome for a run in insertion order.
func (db *DB) RunPages(runID int64) ([]PageRecord, error) {
	rows, err := db.Query(`
		SELECT url, status, COALESCE(page_slug, ''), component_count
		FROM crawl_pages
		WHERE run_id = ?
		ORDER BY page_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run pages: %w", err)
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		var p PageRecord
		if err := rows.Scan(&p.URL, &p.Status, &p.Slug, &p.ComponentCount); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}

	return pages, nil
}

// PageCounts returns per-status page counts for a run.
func (db *DB) PageCounts(runID int64) (map[string]int, error) {
	rows, err := db.Query(`
		SELECT status, COUNT(*)
		FROM crawl_pages
		WHERE run_id = ?
		GROUP BY status
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan page count: %w", err)
		}
		counts[status] = n
	}
	return counts, nil
}
