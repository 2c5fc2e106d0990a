package services

import (
	"context"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
)

// JobReaderSvc defines read operations for job data
type JobReaderSvc interface {
	// GetJob retrieves a job together with its computed billing state.
	GetJob(ctx context.Context, jobID string) (*domain.BilledJob, error)

	// ListJobs retrieves a page of jobs with their billing state.
	ListJobs(ctx context.Context, params dto.ListJobsParams) (*dto.ListJobsResponse, error)
}

// JobWriterSvc defines write operations for job data
type JobWriterSvc interface {
	// CreateJob records a vehicle intake.
	CreateJob(ctx context.Context, req dto.CreateJobRequest, userID string) (*domain.BilledJob, error)

	// UpdateJobBilling changes amounts, discount, tax or due date of an open job.
	UpdateJobBilling(ctx context.Context, jobID string, req dto.UpdateJobBillingRequest, userID string) (*domain.BilledJob, error)

	// UpdateJobStatus moves the job through its lifecycle. Allowed on closed jobs.
	UpdateJobStatus(ctx context.Context, jobID string, req dto.UpdateJobStatusRequest, userID string) (*domain.BilledJob, error)

	// SetInvoiceNumber attaches an invoice number and marks a draft job invoiced.
	SetInvoiceNumber(ctx context.Context, jobID string, invoiceNumber string, userID string) (*domain.BilledJob, error)

	// CloseJob freezes billing on the job. It cannot be reopened.
	CloseJob(ctx context.Context, jobID string, userID string) (*domain.BilledJob, error)
}

// JobMaintenanceSvc defines one-off data maintenance operations
type JobMaintenanceSvc interface {
	// BackfillLegacyNotes promotes discount and invoice data kept in the notes
	// column into structured fields. With dryRun nothing is written.
	BackfillLegacyNotes(ctx context.Context, userID string, dryRun bool) (*dto.BackfillResult, error)
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
	JobMaintenanceSvc
}
