package dto

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
)

// AddPaymentRequest records an amount received against a job.
type AddPaymentRequest struct {
	Amount          domain.Amount `json:"amount" binding:"gt=0"`
	PaymentMethod   string        `json:"paymentMethod" binding:"required,oneof=cash card upi bank_transfer cheque other"`
	PaymentDate     *string       `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	ReferenceNumber string        `json:"referenceNumber" binding:"omitempty,max=64"`
	Notes           string        `json:"notes"`
}

// ListPaymentsResponse wraps the payments of a job.
type ListPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
}
