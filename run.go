package wikictx

import (
	"context"
	"time"
)

// Run represents one completed collection run and its resulting document.
type Run struct {
	ID         string    `json:"id"`
	Caller     string    `json:"caller"`
	Seeds      []string  `json:"seeds"`
	Document   string    `json:"document"`
	PageCount  int       `json:"pageCount"`
	SpaceCount int       `json:"spaceCount"`
	CreatedAt  time.Time `json:"createdAt"`

	// Pages holds the per-page records of the run. Populated on create;
	// find operations load them on demand.
	Pages []*RunPage `json:"pages,omitempty"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if len(r.Seeds) == 0 {
		return Errorf(EINVALID, "run seeds required")
	}
	if r.Document == "" {
		return Errorf(EINVALID, "run document required")
	}
	return nil
}

// RunPage is one fetched page recorded with a run.
type RunPage struct {
	ID          string `json:"id"`
	RunID       string `json:"runId"`
	SpaceKey    string `json:"spaceKey"`
	SourceURL   string `json:"sourceUrl"`
	Title       string `json:"title"`
	Section     string `json:"section"`
	ContentHash string `json:"contentHash"`
	Position    int    `json:"position"`
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService represents a service for persisting collection runs.
type RunService interface {
	// CreateRun stores a run and its pages.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its pages.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first,
	// without page records.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its pages.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
