package models

// Opportunity is the card-level view model for one pipeline record owned by
// the viewing user. Every field except ID is taken verbatim from the record
// search projection; numeric-looking values (probability, projectedtotal)
// stay string-typed because that is how the search layer hands them over.
// Instances are built fresh on every render and never mutated afterwards.
type Opportunity struct {
	ID               string `json:"id"`
	TranID           string `json:"tranid"`
	CompanyName      string `json:"companyname"`
	EntityStatus     string `json:"entitystatus"`
	EntityStatusText string `json:"entitystatusText"`
	Probability      string `json:"probability"`
	ExpectedClose    string `json:"expectedclosedate"`
	CloseDateGroup   string `json:"closeDateGroup"`
	ProjectedTotal   string `json:"projectedtotal"`
	Title            string `json:"title"`
}

// BoardSnapshot is the immutable payload handed from the server render to the
// client renderer: the derived columns, the full record set, and the viewing
// user. It is serialized exactly once per render; the client never asks for a
// refresh, so all later filtering runs over this snapshot as embedded.
type BoardSnapshot struct {
	Columns       []StatusColumn `json:"columns"`
	Opportunities []Opportunity  `json:"opportunities"`
	UserID        int64          `json:"userId"`
}
