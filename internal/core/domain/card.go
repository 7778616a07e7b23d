package domain

import (
	"strings"
	"time"
)

// CardType defines the benefit category a card (and the businesses it can pay)
// belongs to.
type CardType string

const (
	Groceries  CardType = "groceries"
	Restaurant CardType = "restaurant"
	Transport  CardType = "transport"
	Education  CardType = "education"
	Health     CardType = "health"
)

// ParseCardType normalizes a raw type string case-insensitively and reports
// whether it belongs to the supported set.
func ParseCardType(raw string) (CardType, bool) {
	switch t := CardType(strings.ToLower(raw)); t {
	case Groceries, Restaurant, Transport, Education, Health:
		return t, true
	default:
		return "", false
	}
}

// Card represents a corporate benefit card within the core domain.
// This is the primary representation used by services.
type Card struct {
	ID             int64    `json:"id"`
	EmployeeID     int64    `json:"employeeId"`
	Number         string   `json:"number"`
	CardholderName string   `json:"cardholderName"`
	SecurityCode   string   `json:"-"` // Encrypted at rest, never serialized
	ExpirationDate string   `json:"expirationDate"` // "MM/YY"
	Password       *string  `json:"-"` // Encrypted; nil means not activated
	IsVirtual      bool     `json:"isVirtual"`
	IsBlocked      bool     `json:"isBlocked"`
	Type           CardType `json:"type"`
}

// IsActive reports whether the card has been activated (password set).
func (c *Card) IsActive() bool {
	return c.Password != nil
}

// IsExpired reports whether the current year/month period is strictly later
// than the card's expiration. Both sides are compared as "YY/MM" strings.
func (c *Card) IsExpired(now time.Time) bool {
	parts := strings.Split(c.ExpirationDate, "/")
	if len(parts) != 2 {
		return true
	}
	expiration := parts[1] + "/" + parts[0]
	return now.Format("06/01") > expiration
}
