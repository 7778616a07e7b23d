package models

// Business is the database row shape for the businesses table.
type Business struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Type string `db:"type"`
}
