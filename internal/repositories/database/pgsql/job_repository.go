package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_billing_app/internal/models"
	"github.com/SscSPs/workshop_billing_app/internal/utils/mapping"
)

const jobColumns = `job_id, vehicle_number, customer_name, customer_phone, installer_name, description, status,
	total_amount, discount_amount, discount_percentage, discount_offered_by, discount_reason, tax_amount,
	net_payable, final_amount, invoice_number, due_date, billing_status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxJobRepository stores jobs in PostgreSQL.
type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) *PgxJobRepository {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryWithTx = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID, &m.VehicleNumber, &m.CustomerName, &m.CustomerPhone, &m.InstallerName, &m.Description, &m.Status,
		&m.TotalAmount, &m.DiscountAmount, &m.DiscountPercentage, &m.DiscountOfferedBy, &m.DiscountReason, &m.TaxAmount,
		&m.NetPayable, &m.FinalAmount, &m.InvoiceNumber, &m.DueDate, &m.BillingStatus, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()
	var jobs []models.Job
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return mapping.ToDomainJobSlice(jobs), nil
}

// SaveJob inserts a new job.
func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobID, m.VehicleNumber, m.CustomerName, m.CustomerPhone, m.InstallerName, m.Description, m.Status,
		m.TotalAmount, m.DiscountAmount, m.DiscountPercentage, m.DiscountOfferedBy, m.DiscountReason, m.TaxAmount,
		m.NetPayable, m.FinalAmount, m.InvoiceNumber, m.DueDate, m.BillingStatus, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "failed to save job "+job.JobID)
}

// UpdateJob overwrites the mutable columns of a job.
func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	return r.update(ctx, r.Pool, job)
}

// UpdateJobInTx is UpdateJob within a caller-owned transaction.
func (r *PgxJobRepository) UpdateJobInTx(ctx context.Context, tx pgx.Tx, job domain.Job) error {
	return r.update(ctx, tx, job)
}

func (r *PgxJobRepository) update(ctx context.Context, db dbtx, job domain.Job) error {
	m := mapping.ToModelJob(job)
	query := `
		UPDATE jobs SET
			vehicle_number = $2, customer_name = $3, customer_phone = $4, installer_name = $5,
			description = $6, status = $7, total_amount = $8, discount_amount = $9,
			discount_percentage = $10, discount_offered_by = $11, discount_reason = $12,
			tax_amount = $13, net_payable = $14, final_amount = $15, invoice_number = $16,
			due_date = $17, billing_status = $18, notes = $19,
			last_updated_at = $20, last_updated_by = $21
		WHERE job_id = $1;
	`
	tag, err := db.Exec(ctx, query,
		m.JobID, m.VehicleNumber, m.CustomerName, m.CustomerPhone, m.InstallerName,
		m.Description, m.Status, m.TotalAmount, m.DiscountAmount,
		m.DiscountPercentage, m.DiscountOfferedBy, m.DiscountReason,
		m.TaxAmount, m.NetPayable, m.FinalAmount, m.InvoiceNumber,
		m.DueDate, m.BillingStatus, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "failed to update job "+job.JobID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", job.JobID, apperrors.ErrNotFound)
	}
	return nil
}

// FindJobByID retrieves a job by its ID.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1;`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		return nil, mapError(err, "job "+jobID)
	}
	job := mapping.ToDomainJob(m)
	return &job, nil
}

// FindJobByIDForUpdate retrieves a job and locks its row for the rest of tx.
func (r *PgxJobRepository) FindJobByIDForUpdate(ctx context.Context, tx pgx.Tx, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1 FOR UPDATE;`
	m, err := scanJob(tx.QueryRow(ctx, query, jobID))
	if err != nil {
		return nil, mapError(err, "job "+jobID)
	}
	job := mapping.ToDomainJob(m)
	return &job, nil
}

// ListJobs retrieves a page of jobs, newest first, positioned after filter.After.
func (r *PgxJobRepository) ListJobs(ctx context.Context, filter portsrepo.JobListFilter) ([]domain.Job, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "status = "+arg(filter.Status))
	}
	if filter.Search != "" {
		p := arg("%" + escapeLike(filter.Search) + "%")
		conditions = append(conditions, "(vehicle_number ILIKE "+p+" OR customer_name ILIKE "+p+" OR customer_phone ILIKE "+p+" OR invoice_number ILIKE "+p+")")
	}
	if filter.After != nil {
		conditions = append(conditions, "(created_at, job_id) < ("+arg(filter.After.CreatedAt)+"::timestamptz, "+arg(filter.After.ID)+"::varchar)")
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, job_id DESC LIMIT " + arg(filter.Limit) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListAllJobs retrieves every job, oldest first.
func (r *PgxJobRepository) ListAllJobs(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at, job_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all jobs: %w", err)
	}
	return collectJobs(rows)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
