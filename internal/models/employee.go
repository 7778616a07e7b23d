package models

// Employee is the database row shape for the employees table.
type Employee struct {
	ID        int64  `db:"id"`
	CompanyID int64  `db:"company_id"`
	FullName  string `db:"full_name"`
}
