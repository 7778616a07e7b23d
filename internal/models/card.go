package models

// Card is the database row shape for the cards table. SecurityCode and
// Password hold ciphertext; Password is NULL until activation.
type Card struct {
	ID             int64   `db:"id"`
	EmployeeID     int64   `db:"employee_id"`
	Number         string  `db:"number"`
	CardholderName string  `db:"cardholder_name"`
	SecurityCode   string  `db:"security_code"`
	ExpirationDate string  `db:"expiration_date"`
	Password       *string `db:"password"`
	IsVirtual      bool    `db:"is_virtual"`
	IsBlocked      bool    `db:"is_blocked"`
	Type           string  `db:"type"`
}
