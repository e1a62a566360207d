package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// Searcher is the narrow contract onto the record store: an owner-scoped,
// fixed-projection opportunity search whose bucket classification is
// evaluated against ref at query time.
type Searcher interface {
	SearchByOwner(ctx context.Context, ownerID int64, ref time.Time) ([]models.Opportunity, error)
}

// Service defines the read operations the portlet render needs
type Service interface {
	// OpportunitiesByUser fetches all opportunities assigned to a sales rep
	OpportunitiesByUser(ctx context.Context, userID int64) ([]models.Opportunity, error)
}

// service implements Service over a Searcher
type service struct {
	searcher Searcher
	now      func() time.Time
}

// NewService creates a new query service. A nil clock uses time.Now.
func NewService(searcher Searcher, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{searcher: searcher, now: clock}
}

// OpportunitiesByUser issues a single search scoped to records owned by
// userID. The close-date buckets in the result are classified against the
// clock's "now", so the same record can move buckets when the query is
// re-run across a month or quarter boundary; callers treat the result as a
// point-in-time snapshot, never as stable state.
func (s *service) OpportunitiesByUser(ctx context.Context, userID int64) ([]models.Opportunity, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	opportunities, err := s.searcher.SearchByOwner(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to search opportunities: %w", err)
	}

	slog.Debug("fetched opportunities", "count", len(opportunities), "user", userID)
	return opportunities, nil
}
