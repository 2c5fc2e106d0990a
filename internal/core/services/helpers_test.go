package services_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func newJob(id string, total string, createdAt time.Time) domain.Job {
	job := domain.Job{
		JobID:         id,
		VehicleNumber: "KA01AB" + id,
		CustomerName:  "Customer " + id,
		Status:        domain.JobPending,
		BillingStatus: domain.BillingDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     "user-1",
			LastUpdatedAt: createdAt,
			LastUpdatedBy: "user-1",
		},
	}
	if total != "" {
		job.TotalAmount = decPtr(total)
	}
	return job
}

func newPayment(jobID, id, amount string, paidAt time.Time) domain.Payment {
	return domain.Payment{
		PaymentID:     id,
		JobID:         jobID,
		Amount:        domain.ParseAmount(amount),
		PaymentMethod: "cash",
		PaymentDate:   paidAt,
		CreatedAt:     paidAt,
		CreatedBy:     "user-1",
	}
}
