package domain

// Company represents an issuing employer. Companies are provisioned out of
// band and identified at the API boundary by their API key.
type Company struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"-"`
}
