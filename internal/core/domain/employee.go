package domain

// Employee belongs to exactly one company and is the holder of issued cards.
type Employee struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"companyId"`
	FullName  string `json:"fullName"`
}
