package models

// StatusColumn represents one pipeline stage on the board. Columns are never
// stored: the set is re-derived on each render from the distinct status codes
// present in the user's records, ordered by the numeric value of the code.
type StatusColumn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
