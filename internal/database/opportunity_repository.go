package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// OpportunityRepo runs the owner-scoped opportunity search against SQLite.
type OpportunityRepo struct {
	db *sql.DB
}

// NewOpportunityRepo creates a new OpportunityRepo wrapping the given database connection.
func NewOpportunityRepo(db *sql.DB) *OpportunityRepo {
	return &OpportunityRepo{db: db}
}

// SearchByOwner returns every opportunity whose sales rep matches ownerID.
// The close-date bucket classification is computed inside the query
// projection against ref, mirroring a server-evaluated formula column: the
// result is a snapshot taken at query time, not a stable property of the row.
// Rows are mapped 1:1 into view models and fully materialized before return.
func (r *OpportunityRepo) SearchByOwner(ctx context.Context, ownerID int64, ref time.Time) ([]models.Opportunity, error) {
	w := windowsAt(ref)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tranid, company_name, entity_status, entity_status_name,
		       probability, close_date, projected_total, title,
		       TRIM(
		         CASE WHEN close_date >= ? AND close_date < ? THEN 'LAST_QUARTER ' ELSE '' END ||
		         CASE WHEN close_date >= ? AND close_date < ? THEN 'THIS_MONTH ' ELSE '' END ||
		         CASE WHEN close_date >= ? AND close_date < ? THEN 'THIS_QUARTER ' ELSE '' END ||
		         CASE WHEN close_date >= ? AND close_date < ? THEN 'NEXT_QUARTER ' ELSE '' END
		       ) AS close_date_group
		FROM opportunities
		WHERE sales_rep_id IN (?)
		ORDER BY id`,
		w.lastQuarterStart, w.thisQuarterStart,
		w.monthStart, w.nextMonthStart,
		w.thisQuarterStart, w.nextQuarterStart,
		w.nextQuarterStart, w.quarterAfterNext,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("opportunity search failed: %w", err)
	}
	defer rows.Close()

	opportunities := []models.Opportunity{}
	for rows.Next() {
		var (
			id        int64
			closeDate sql.NullString
			group     string
			opp       models.Opportunity
		)
		if err := rows.Scan(
			&id, &opp.TranID, &opp.CompanyName, &opp.EntityStatus,
			&opp.EntityStatusText, &opp.Probability, &closeDate,
			&opp.ProjectedTotal, &opp.Title, &group,
		); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}

		opp.ID = strconv.FormatInt(id, 10)
		opp.ExpectedClose = displayDate(closeDate.String)
		if group == "" {
			group = "OTHER"
		}
		opp.CloseDateGroup = group

		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("opportunity search failed: %w", err)
	}

	return opportunities, nil
}

// displayDate renders a stored ISO date as the M/D/YYYY display string the
// cards show. Unparseable or empty dates come back empty.
func displayDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day()) + "/" + strconv.Itoa(t.Year())
}
