package mapping

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelPayment converts a domain Payment to a model Payment.
// An invalid amount is stored as NULL.
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:       d.PaymentID,
		JobID:           d.JobID,
		PaymentMethod:   d.PaymentMethod,
		PaymentDate:     d.PaymentDate,
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
		VoidedAt:        toNullTime(d.VoidedAt),
	}
	if d.Amount.Valid {
		m.Amount = decimal.NullDecimal{Decimal: d.Amount.Value, Valid: true}
	}
	if d.VoidedBy != nil {
		m.VoidedBy = toNullString(*d.VoidedBy)
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:       m.PaymentID,
		JobID:           m.JobID,
		PaymentMethod:   m.PaymentMethod,
		PaymentDate:     m.PaymentDate,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
		VoidedAt:        fromNullTime(m.VoidedAt),
	}
	if m.Amount.Valid {
		d.Amount = domain.NewAmount(m.Amount.Decimal)
	}
	if m.VoidedBy.Valid {
		by := m.VoidedBy.String
		d.VoidedBy = &by
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
