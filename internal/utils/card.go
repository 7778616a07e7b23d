package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// cardValidityYears is how long a newly issued card stays valid.
const cardValidityYears = 5

// GenerateCardNumber generates a random card number of the given length.
func GenerateCardNumber(length int) (string, error) {
	if length <= 0 || length > 19 {
		return "", fmt.Errorf("invalid card number length: %d", length)
	}

	digits := make([]byte, length)
	if _, err := rand.Read(digits); err != nil {
		return "", fmt.Errorf("failed to generate random digits: %w", err)
	}

	var builder strings.Builder
	for _, b := range digits {
		builder.WriteByte(b%10 + '0')
	}
	return builder.String(), nil
}

// GenerateSecurityCode generates a random 3-digit security code.
func GenerateSecurityCode() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate security code: %w", err)
	}
	return fmt.Sprintf("%03d", (int(b[0])%10)*100+(int(b[1])%10)*10+int(b[2])%10), nil
}

// GenerateExpirationDate formats the card expiration as "MM/YY", counted from
// the given moment.
func GenerateExpirationDate(now time.Time) string {
	return now.AddDate(cardValidityYears, 0, 0).Format("01/06")
}

// MaskCardholderName uppercases the employee's full name and abbreviates the
// interior tokens to their initial letter, keeping the first and last tokens
// whole. Interior tokens shorter than 3 characters (connectives like "da",
// "de") are kept whole as well.
func MaskCardholderName(fullName string) string {
	tokens := strings.Fields(strings.ToUpper(fullName))
	if len(tokens) <= 2 {
		return strings.Join(tokens, " ")
	}

	masked := make([]string, 0, len(tokens))
	masked = append(masked, tokens[0])
	for _, token := range tokens[1 : len(tokens)-1] {
		if runes := []rune(token); len(runes) >= 3 {
			masked = append(masked, string(runes[0]))
		} else {
			masked = append(masked, token)
		}
	}
	masked = append(masked, tokens[len(tokens)-1])
	return strings.Join(masked, " ")
}
