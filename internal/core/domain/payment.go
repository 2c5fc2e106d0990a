package domain

import "time"

// Payment is a single amount received against a job. Payments are append-only;
// removal is recorded by VoidedAt rather than deleting the row.
type Payment struct {
	PaymentID       string    `json:"paymentID"`
	JobID           string    `json:"jobID"`
	Amount          Amount    `json:"amount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentDate     time.Time `json:"paymentDate"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`

	VoidedAt *time.Time `json:"voidedAt,omitempty"`
	VoidedBy *string    `json:"voidedBy,omitempty"`
}

// IsVoided reports whether the payment was removed.
func (p *Payment) IsVoided() bool {
	return p.VoidedAt != nil
}
