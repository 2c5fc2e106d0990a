package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_billing_app/internal/models"
	"github.com/SscSPs/workshop_billing_app/internal/utils/mapping"
)

const paymentColumns = `payment_id, job_id, amount, payment_method, payment_date, reference_number, notes,
	created_at, created_by, voided_at, voided_by`

// PgxPaymentRepository stores payments in PostgreSQL. Voided rows stay in the
// table and are filtered out of every read.
type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{pool: pool}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.JobID, &m.Amount, &m.PaymentMethod, &m.PaymentDate, &m.ReferenceNumber, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.VoidedAt, &m.VoidedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

func groupByJob(payments []domain.Payment) map[string][]domain.Payment {
	out := make(map[string][]domain.Payment)
	for _, p := range payments {
		out[p.JobID] = append(out[p.JobID], p)
	}
	return out
}

// SavePaymentInTx inserts a new payment.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID, m.JobID, m.Amount, m.PaymentMethod, m.PaymentDate, m.ReferenceNumber, m.Notes,
		m.CreatedAt, m.CreatedBy, m.VoidedAt, m.VoidedBy,
	)
	return mapError(err, "failed to save payment "+payment.PaymentID)
}

// VoidPaymentInTx marks a non-voided payment of the job as voided.
func (r *PgxPaymentRepository) VoidPaymentInTx(ctx context.Context, tx pgx.Tx, jobID string, paymentID string, userID string, now time.Time) error {
	query := `
		UPDATE payments SET voided_at = $3, voided_by = $4
		WHERE payment_id = $1 AND job_id = $2 AND voided_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, paymentID, jobID, now, userID)
	if err != nil {
		return mapError(err, "failed to void payment "+paymentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	return nil
}

// FindPaymentByID retrieves a non-voided payment.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 AND voided_at IS NULL;`
	m, err := scanPayment(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		return nil, mapError(err, "payment "+paymentID)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

// FindPaymentsByJobID retrieves the payments of a job, oldest payment date first.
func (r *PgxPaymentRepository) FindPaymentsByJobID(ctx context.Context, jobID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE job_id = $1 AND voided_at IS NULL
		ORDER BY payment_date, created_at;
	`
	return r.queryPayments(ctx, query, jobID)
}

// FindPaymentsByJobIDs retrieves payments for several jobs keyed by job ID.
func (r *PgxPaymentRepository) FindPaymentsByJobIDs(ctx context.Context, jobIDs []string) (map[string][]domain.Payment, error) {
	if len(jobIDs) == 0 {
		return map[string][]domain.Payment{}, nil
	}
	query := `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE job_id = ANY($1) AND voided_at IS NULL
		ORDER BY payment_date, created_at;
	`
	payments, err := r.queryPayments(ctx, query, jobIDs)
	if err != nil {
		return nil, err
	}
	return groupByJob(payments), nil
}

// FindAllPayments retrieves every non-voided payment keyed by job ID.
func (r *PgxPaymentRepository) FindAllPayments(ctx context.Context) (map[string][]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE voided_at IS NULL
		ORDER BY payment_date, created_at;
	`
	payments, err := r.queryPayments(ctx, query)
	if err != nil {
		return nil, err
	}
	return groupByJob(payments), nil
}
