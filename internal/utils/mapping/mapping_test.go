package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/models"
)

func TestJobMapping_Nullables(t *testing.T) {
	total := decimal.RequireFromString("1200")
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	job := domain.Job{
		JobID:         "job-1",
		VehicleNumber: "KA01AB1234",
		Status:        domain.JobInProgress,
		TotalAmount:   &total,
		DueDate:       &due,
		BillingStatus: domain.BillingDraft,
	}

	m := ToModelJob(job)
	assert.True(t, m.TotalAmount.Valid)
	assert.False(t, m.DiscountAmount.Valid)
	assert.False(t, m.InvoiceNumber.Valid, "empty invoice number is stored as NULL")
	assert.True(t, m.DueDate.Valid)

	back := ToDomainJob(m)
	if assert.NotNil(t, back.TotalAmount) {
		assert.True(t, total.Equal(*back.TotalAmount))
	}
	assert.Nil(t, back.DiscountAmount)
	assert.Nil(t, back.NetPayable)
	assert.Equal(t, "", back.InvoiceNumber)
	if assert.NotNil(t, back.DueDate) {
		assert.True(t, due.Equal(*back.DueDate))
	}
	assert.Equal(t, domain.JobInProgress, back.Status)
}

func TestPaymentMapping_InvalidAmountAndVoid(t *testing.T) {
	voidedAt := time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)
	by := "user-9"
	p := domain.Payment{
		PaymentID: "p1",
		JobID:     "job-1",
		Amount:    domain.ParseAmount("abc"),
		VoidedAt:  &voidedAt,
		VoidedBy:  &by,
	}

	m := ToModelPayment(p)
	assert.False(t, m.Amount.Valid)
	assert.True(t, m.VoidedAt.Valid)
	assert.Equal(t, "user-9", m.VoidedBy.String)

	back := ToDomainPayment(m)
	assert.False(t, back.Amount.Valid)
	assert.True(t, back.IsVoided())
	if assert.NotNil(t, back.VoidedBy) {
		assert.Equal(t, "user-9", *back.VoidedBy)
	}

	valid := ToDomainPayment(models.Payment{Amount: decimal.NewNullDecimal(decimal.NewFromInt(500))})
	assert.True(t, valid.Amount.Valid)
	assert.Equal(t, "500", valid.Amount.Value.String())
	assert.False(t, valid.IsVoided())
}
