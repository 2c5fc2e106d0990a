package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data.
// Voided payments are never returned.
type PaymentReader interface {
	// FindPaymentByID retrieves a single non-voided payment.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentsByJobID retrieves the payments of one job, oldest payment date first.
	FindPaymentsByJobID(ctx context.Context, jobID string) ([]domain.Payment, error)

	// FindPaymentsByJobIDs retrieves payments for several jobs keyed by job ID.
	FindPaymentsByJobIDs(ctx context.Context, jobIDs []string) (map[string][]domain.Payment, error)

	// FindAllPayments retrieves every payment keyed by job ID.
	FindAllPayments(ctx context.Context) (map[string][]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
// Writes always happen inside a transaction that holds the job's row lock.
type PaymentWriter interface {
	// SavePaymentInTx persists a new payment.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// VoidPaymentInTx marks a payment of the job as voided.
	VoidPaymentInTx(ctx context.Context, tx pgx.Tx, jobID string, paymentID string, userID string, now time.Time) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
