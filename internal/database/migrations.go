package database

import (
	"context"
	"database/sql"
	"time"
)

// runMigrations creates the database schema and seeds demo data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create opportunities table. Numeric-looking columns are stored as TEXT
	// on purpose: the search projection exposes them as display strings and
	// the board never does arithmetic on them server side.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS opportunities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tranid TEXT NOT NULL,
			company_name TEXT NOT NULL DEFAULT '',
			entity_status TEXT NOT NULL,
			entity_status_name TEXT NOT NULL DEFAULT '',
			probability TEXT NOT NULL DEFAULT '',
			close_date TEXT,
			projected_total TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			sales_rep_id INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create index for the owner-scoped search
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_opportunities_sales_rep
		ON opportunities(sales_rep_id)
	`)
	if err != nil {
		return err
	}

	return seedDemoOpportunities(ctx, db)
}

// seedDemoOpportunities inserts a handful of records when the table is empty
// so a fresh checkout renders a populated board. Close dates are placed
// relative to the current calendar so every filter bucket has members.
func seedDemoOpportunities(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM opportunities").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	iso := func(t time.Time) string { return t.Format("2006-01-02") }
	qStart := quarterStart(now)

	demo := []struct {
		tranid, company, status, statusName, probability string
		closeDate, total, title                          string
	}{
		{"OPP1001", "Lakeshore Paper Supply", "10", "Qualification", "25",
			iso(monthStart(now).AddDate(0, 0, 9)), "150000", "Q3 restock"},
		{"OPP1002", "Harbor Freight Logistics", "11", "Proposal", "50",
			iso(monthStart(now).AddDate(0, 0, 17)), "2500000", "Fleet expansion"},
		{"OPP1003", "Meridian Health Group", "11", "Proposal", "60",
			iso(qStart.AddDate(0, 2, 3)), "48000", "Clinic onboarding"},
		{"OPP1004", "Bluebird Apparel", "12", "Negotiation", "75",
			iso(qStart.AddDate(0, 3, 20)), "820000", "Holiday line"},
		{"OPP1005", "Cedar & Stone Interiors", "10", "Qualification", "20",
			iso(qStart.AddDate(0, -2, 6)), "999", "Showroom refresh"},
		{"OPP1006", "Northwind Analytics", "13", "Closed Won", "100",
			iso(qStart.AddDate(0, 9, 0)), "310000", "Multi-year license"},
	}

	for _, o := range demo {
		_, err := db.ExecContext(ctx, `
			INSERT INTO opportunities
				(tranid, company_name, entity_status, entity_status_name,
				 probability, close_date, projected_total, title, sales_rep_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			o.tranid, o.company, o.status, o.statusName,
			o.probability, o.closeDate, o.total, o.title, demoSalesRepID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// demoSalesRepID is the owner the seed records are assigned to; the dev
// config defaults the viewer to the same id.
const demoSalesRepID = 1
