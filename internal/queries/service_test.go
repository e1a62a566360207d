package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// fakeSearcher records the search call and returns canned results
type fakeSearcher struct {
	ownerID int64
	ref     time.Time
	result  []models.Opportunity
	err     error
}

func (f *fakeSearcher) SearchByOwner(_ context.Context, ownerID int64, ref time.Time) ([]models.Opportunity, error) {
	f.ownerID = ownerID
	f.ref = ref
	return f.result, f.err
}

func TestOpportunitiesByUser(t *testing.T) {
	ref := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	searcher := &fakeSearcher{result: []models.Opportunity{{ID: "1", TranID: "OPP1"}}}
	svc := NewService(searcher, func() time.Time { return ref })

	opps, err := svc.OpportunitiesByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("OpportunitiesByUser failed: %v", err)
	}
	if len(opps) != 1 || opps[0].TranID != "OPP1" {
		t.Errorf("unexpected result: %+v", opps)
	}
	if searcher.ownerID != 7 {
		t.Errorf("searched owner %d, want 7", searcher.ownerID)
	}
	if !searcher.ref.Equal(ref) {
		t.Errorf("search ref = %v, want the service clock's now", searcher.ref)
	}
}

func TestOpportunitiesByUserInvalidID(t *testing.T) {
	svc := NewService(&fakeSearcher{}, nil)

	for _, id := range []int64{0, -1} {
		_, err := svc.OpportunitiesByUser(context.Background(), id)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Errorf("userID %d: err = %v, want ErrInvalidUserID", id, err)
		}
	}
}

func TestOpportunitiesByUserSearchError(t *testing.T) {
	searchErr := errors.New("store unavailable")
	svc := NewService(&fakeSearcher{err: searchErr}, nil)

	_, err := svc.OpportunitiesByUser(context.Background(), 7)
	if !errors.Is(err, searchErr) {
		t.Errorf("err = %v, want wrapped search error", err)
	}
}
