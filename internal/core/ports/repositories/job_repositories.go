package repositories

import (
	"context"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// JobListFilter narrows a page of jobs. Jobs are ordered newest first.
type JobListFilter struct {
	Status string             // exact lifecycle status, empty for any
	Search string             // case-insensitive match on vehicle number or customer
	Limit  int                // page size
	After  *pagination.Cursor // keyset position of the previous page's last row
}

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a specific job by its unique identifier.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs retrieves one page of jobs matching the filter.
	ListJobs(ctx context.Context, filter JobListFilter) ([]domain.Job, error)

	// ListAllJobs retrieves every job, oldest first. Used to build snapshots.
	ListAllJobs(ctx context.Context) ([]domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// SaveJob persists a new job.
	SaveJob(ctx context.Context, job domain.Job) error

	// UpdateJob overwrites the mutable fields of an existing job.
	UpdateJob(ctx context.Context, job domain.Job) error
}

// JobTransactionSupport defines operations that run inside a caller-owned transaction
type JobTransactionSupport interface {
	// FindJobByIDForUpdate selects a job and locks its row until the transaction ends.
	FindJobByIDForUpdate(ctx context.Context, tx pgx.Tx, jobID string) (*domain.Job, error)

	// UpdateJobInTx overwrites the mutable fields of a job within the given transaction.
	UpdateJobInTx(ctx context.Context, tx pgx.Tx, job domain.Job) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
	JobTransactionSupport
}

// JobRepositoryWithTx extends JobRepositoryFacade with transaction capabilities
type JobRepositoryWithTx interface {
	JobRepositoryFacade
	TransactionManager
}
