package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/wikictx"
	"github.com/google/uuid"
)

// seedSeparator joins seed URLs into a single column. Newlines cannot
// appear inside a URL, so the encoding round-trips.
const seedSeparator = "\n"

// Compile-time interface verification.
var _ wikictx.RunService = (*RunService)(nil)

// RunService implements wikictx.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run and its page records.
func (s *RunService) CreateRun(ctx context.Context, run *wikictx.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, caller, seeds, document, page_count, space_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Caller, strings.Join(run.Seeds, seedSeparator), run.Document,
		run.PageCount, run.SpaceCount, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, page := range run.Pages {
		page.ID = uuid.New().String()
		page.RunID = run.ID
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO run_pages (id, run_id, space_key, source_url, title, section, content_hash, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, page.ID, page.RunID, page.SpaceKey, page.SourceURL, page.Title,
			page.Section, page.ContentHash, page.Position)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRunByID retrieves a run with its page records.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*wikictx.Run, error) {
	var run wikictx.Run
	var seeds, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, caller, seeds, document, page_count, space_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Caller, &seeds, &run.Document,
		&run.PageCount, &run.SpaceCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, wikictx.Errorf(wikictx.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.Seeds = strings.Split(seeds, seedSeparator)
	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	run.Pages, err = s.findRunPages(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first, without page
// records.
func (s *RunService) FindRuns(ctx context.Context, filter wikictx.RunFilter) ([]*wikictx.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, caller, seeds, document, page_count, space_count, created_at
		FROM runs
	`)
	if filter.ID != nil {
		query.WriteString(" WHERE id = ?")
		args = append(args, *filter.ID)
	}
	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*wikictx.Run
	for rows.Next() {
		var run wikictx.Run
		var seeds, createdAt string
		if err := rows.Scan(&run.ID, &run.Caller, &seeds, &run.Document,
			&run.PageCount, &run.SpaceCount, &createdAt); err != nil {
			return nil, err
		}
		run.Seeds = strings.Split(seeds, seedSeparator)
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run; its pages cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return wikictx.Errorf(wikictx.ENOTFOUND, "run not found")
	}

	return nil
}

// findRunPages loads the page records of a run ordered by position.
func (s *RunService) findRunPages(ctx context.Context, runID string) ([]*wikictx.RunPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, space_key, source_url, title, section, content_hash, position
		FROM run_pages
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*wikictx.RunPage
	for rows.Next() {
		var page wikictx.RunPage
		if err := rows.Scan(&page.ID, &page.RunID, &page.SpaceKey, &page.SourceURL,
			&page.Title, &page.Section, &page.ContentHash, &page.Position); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
