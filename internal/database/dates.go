package database

import "time"

// monthStart returns midnight on the first day of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// quarterStart returns midnight on the first day of t's calendar quarter.
func quarterStart(t time.Time) time.Time {
	q := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
}

// closeDateWindows holds the half-open [start, end) ISO-date boundaries the
// search projection classifies close dates against. All four windows are
// anchored to the same reference instant, so the classification is a
// point-in-time snapshot: re-running the search near a month or quarter
// boundary can legitimately re-bucket an unchanged record.
type closeDateWindows struct {
	lastQuarterStart string
	thisQuarterStart string
	monthStart       string
	nextMonthStart   string
	nextQuarterStart string
	quarterAfterNext string
}

func windowsAt(ref time.Time) closeDateWindows {
	iso := func(t time.Time) string { return t.Format("2006-01-02") }
	qs := quarterStart(ref)
	ms := monthStart(ref)
	return closeDateWindows{
		lastQuarterStart: iso(qs.AddDate(0, -3, 0)),
		thisQuarterStart: iso(qs),
		monthStart:       iso(ms),
		nextMonthStart:   iso(ms.AddDate(0, 1, 0)),
		nextQuarterStart: iso(qs.AddDate(0, 3, 0)),
		quarterAfterNext: iso(qs.AddDate(0, 6, 0)),
	}
}
