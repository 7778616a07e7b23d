package domain

// Business is a merchant whose category must match the card type of any
// payment it receives.
type Business struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	Type CardType `json:"type"`
}
