package queries

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// DeriveStatusColumns derives the board's status columns from a record set.
// Only statuses that actually have opportunities appear — no empty columns.
//
// The first record seen for a status supplies the column's display name;
// later records with the same status never rename it. A missing display name
// falls back to "Status <code>". Output is sorted ascending by the numeric
// value of the status code (pipeline order); codes are otherwise treated as
// opaque strings.
func DeriveStatusColumns(opportunities []models.Opportunity) []models.StatusColumn {
	seen := map[string]bool{}
	columns := []models.StatusColumn{}

	for _, opp := range opportunities {
		statusID := opp.EntityStatus
		if statusID == "" || seen[statusID] {
			continue
		}
		seen[statusID] = true

		name := opp.EntityStatusText
		if name == "" {
			name = "Status " + statusID
		}
		columns = append(columns, models.StatusColumn{ID: statusID, Name: name})
	}

	sort.SliceStable(columns, func(i, j int) bool {
		a, _ := strconv.Atoi(columns[i].ID)
		b, _ := strconv.Atoi(columns[j].ID)
		return a < b
	})

	slog.Debug("derived status columns", "count", len(columns))
	return columns
}
