package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table. Amount is NULL only for imported
// rows whose original value could not be parsed.
type Payment struct {
	PaymentID       string              `db:"payment_id"`
	JobID           string              `db:"job_id"`
	Amount          decimal.NullDecimal `db:"amount"`
	PaymentMethod   string              `db:"payment_method"`
	PaymentDate     time.Time           `db:"payment_date"`
	ReferenceNumber string              `db:"reference_number"`
	Notes           string              `db:"notes"`
	CreatedAt       time.Time           `db:"created_at"`
	CreatedBy       string              `db:"created_by"`
	VoidedAt        sql.NullTime        `db:"voided_at"`
	VoidedBy        sql.NullString      `db:"voided_by"`
}
