package services

import (
	"context"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
)

// PaymentSvcFacade defines payment operations on a job
type PaymentSvcFacade interface {
	// AddPayment records an amount received against an open job.
	AddPayment(ctx context.Context, jobID string, req dto.AddPaymentRequest, userID string) (*domain.Payment, error)

	// ListPayments retrieves the non-voided payments of a job, oldest first.
	ListPayments(ctx context.Context, jobID string) ([]domain.Payment, error)

	// VoidPayment removes a payment from all computations of an open job.
	VoidPayment(ctx context.Context, jobID string, paymentID string, userID string) error
}
