package models

// Company is the database row shape for the companies table.
type Company struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	APIKey string `db:"api_key"`
}
