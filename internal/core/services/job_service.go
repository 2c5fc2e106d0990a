package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/utils/billing"
	"github.com/SscSPs/workshop_billing_app/internal/utils/pagination"
)

// jobService handles vehicle intake, lifecycle and billing edits of jobs.
type jobService struct {
	BaseService
	jobRepo     portsrepo.JobRepositoryWithTx
	paymentRepo portsrepo.PaymentReader
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo portsrepo.JobRepositoryWithTx, paymentRepo portsrepo.PaymentReader, opts ...Option) portssvc.JobSvcFacade {
	return &jobService{
		BaseService: newBaseService(opts),
		jobRepo:     jobRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

// CreateJob records a vehicle intake with optional opening billing figures.
func (s *jobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, userID string) (*domain.BilledJob, error) {
	vehicle := strings.ToUpper(strings.TrimSpace(req.VehicleNumber))
	customer := strings.TrimSpace(req.CustomerName)
	if vehicle == "" || customer == "" {
		return nil, fmt.Errorf("%w: vehicle number and customer name are required", apperrors.ErrValidation)
	}
	dueDate, err := dto.ParseDate(req.DueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %v", apperrors.ErrValidation, err)
	}

	status := domain.JobPending
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = domain.JobStatus(strings.TrimSpace(*req.Status))
	}

	now := s.Now()
	job := domain.Job{
		JobID:             uuid.NewString(),
		VehicleNumber:     vehicle,
		CustomerName:      customer,
		CustomerPhone:     strings.TrimSpace(req.CustomerPhone),
		InstallerName:     strings.TrimSpace(req.InstallerName),
		Description:       req.Description,
		Status:            status,
		TotalAmount:       req.TotalAmount,
		DiscountAmount:    req.DiscountAmount,
		DiscountOfferedBy: req.DiscountOfferedBy,
		DiscountReason:    req.DiscountReason,
		TaxAmount:         req.TaxAmount,
		DueDate:           dueDate,
		BillingStatus:     domain.BillingDraft,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	billing.DeriveBilling(&job, req.DiscountPercentage)

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		s.LogError(ctx, err, "Failed to save job", slog.String("vehicle_number", vehicle))
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	s.LogInfo(ctx, "Job created", slog.String("job_id", job.JobID), slog.String("vehicle_number", vehicle))
	s.Track(userID, "job_created", map[string]any{"job_id": job.JobID, "status": string(job.Status)})
	billed := billing.Evaluate(job, nil, now)
	return &billed, nil
}

// GetJob retrieves a job and evaluates it against its payments.
func (s *jobService) GetJob(ctx context.Context, jobID string) (*domain.BilledJob, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job", slog.String("job_id", jobID))
		}
		return nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	return s.evaluate(ctx, *job)
}

// ListJobs retrieves a page of jobs, newest first.
func (s *jobService) ListJobs(ctx context.Context, params dto.ListJobsParams) (*dto.ListJobsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	filter := portsrepo.JobListFilter{
		Status: strings.TrimSpace(params.Status),
		Search: strings.TrimSpace(params.Search),
		Limit:  limit + 1,
	}
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.After = &cursor
	}

	jobs, err := s.jobRepo.ListJobs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs")
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	resp := &dto.ListJobsResponse{Jobs: []dto.JobResponse{}}
	if len(jobs) > limit {
		jobs = jobs[:limit]
		last := jobs[len(jobs)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.JobID)
		resp.NextToken = &token
	}
	if len(jobs) == 0 {
		return resp, nil
	}

	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.JobID
	}
	payments, err := s.paymentRepo.FindPaymentsByJobIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for job page", slog.Int("job_count", len(ids)))
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	now := s.Now()
	resp.Jobs = make([]dto.JobResponse, len(jobs))
	for i, j := range jobs {
		resp.Jobs[i] = dto.ToJobResponse(billing.Evaluate(j, payments[j.JobID], now))
	}
	return resp, nil
}

// UpdateJobBilling changes billing fields of an open job and rederives the
// final amount, discount percentage and net payable.
func (s *jobService) UpdateJobBilling(ctx context.Context, jobID string, req dto.UpdateJobBillingRequest, userID string) (*domain.BilledJob, error) {
	dueDate, err := dto.ParseDate(req.DueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %v", apperrors.ErrValidation, err)
	}
	return s.mutate(ctx, jobID, userID, false, "billing_updated", func(job *domain.Job) error {
		if req.TotalAmount != nil {
			job.TotalAmount = req.TotalAmount
		}
		if req.DiscountAmount != nil {
			job.DiscountAmount = req.DiscountAmount
		}
		if req.TaxAmount != nil {
			job.TaxAmount = req.TaxAmount
		}
		if req.DiscountOfferedBy != nil {
			job.DiscountOfferedBy = strings.TrimSpace(*req.DiscountOfferedBy)
		}
		if req.DiscountReason != nil {
			job.DiscountReason = strings.TrimSpace(*req.DiscountReason)
		}
		switch {
		case req.ClearDueDate:
			job.DueDate = nil
		case dueDate != nil:
			job.DueDate = dueDate
		}
		if req.DiscountPercentage != nil && req.DiscountAmount == nil {
			job.DiscountAmount = nil
		}
		billing.DeriveBilling(job, req.DiscountPercentage)
		return nil
	})
}

// UpdateJobStatus records installer progress. Closed billing does not block it.
func (s *jobService) UpdateJobStatus(ctx context.Context, jobID string, req dto.UpdateJobStatusRequest, userID string) (*domain.BilledJob, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", apperrors.ErrValidation)
	}
	return s.mutate(ctx, jobID, userID, true, "job_status_updated", func(job *domain.Job) error {
		job.Status = domain.JobStatus(status)
		if req.InstallerName != nil {
			job.InstallerName = strings.TrimSpace(*req.InstallerName)
		}
		return nil
	})
}

// SetInvoiceNumber attaches an invoice number; a draft job becomes invoiced.
func (s *jobService) SetInvoiceNumber(ctx context.Context, jobID string, invoiceNumber string, userID string) (*domain.BilledJob, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, fmt.Errorf("%w: invoice number is required", apperrors.ErrValidation)
	}
	return s.mutate(ctx, jobID, userID, false, "invoice_number_set", func(job *domain.Job) error {
		job.InvoiceNumber = invoiceNumber
		if job.BillingStatus == domain.BillingDraft || job.BillingStatus == "" {
			job.BillingStatus = domain.BillingInvoiced
		}
		return nil
	})
}

// CloseJob freezes billing. Closing an already closed job fails with ErrJobClosed.
func (s *jobService) CloseJob(ctx context.Context, jobID string, userID string) (*domain.BilledJob, error) {
	return s.mutate(ctx, jobID, userID, false, "job_closed", func(job *domain.Job) error {
		job.BillingStatus = domain.BillingClosed
		return nil
	})
}

// BackfillLegacyNotes promotes JSON kept in the notes column into structured fields.
// Existing structured values always win over notes.
func (s *jobService) BackfillLegacyNotes(ctx context.Context, userID string, dryRun bool) (*dto.BackfillResult, error) {
	jobs, err := s.jobRepo.ListAllJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs for notes backfill")
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	result := &dto.BackfillResult{JobIDs: []string{}, SkippedJobIDs: []string{}, DryRun: dryRun}
	now := s.Now()
	for _, job := range jobs {
		if strings.TrimSpace(job.Notes) == "" {
			continue
		}
		result.Scanned++
		notes := billing.ParseLegacyNotes(job.Notes)
		if notes.IsEmpty() || !billing.ApplyLegacyNotes(&job, notes) {
			continue
		}
		if !dryRun {
			job.Touch(userID, now)
			if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					// usually an invoice number already taken by another job
					s.LogWarn(ctx, "Skipping job whose notes collide with an existing value",
						slog.String("job_id", job.JobID), slog.String("invoice_number", job.InvoiceNumber))
					result.SkippedJobIDs = append(result.SkippedJobIDs, job.JobID)
					continue
				}
				s.LogError(ctx, err, "Failed to backfill job from notes", slog.String("job_id", job.JobID))
				return result, fmt.Errorf("failed to update job %s: %w", job.JobID, err)
			}
		}
		result.Updated++
		result.JobIDs = append(result.JobIDs, job.JobID)
	}

	s.LogInfo(ctx, "Legacy notes backfill finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", len(result.SkippedJobIDs)),
		slog.Bool("dry_run", dryRun))
	return result, nil
}

// mutate applies change to a job under its row lock and returns the re-evaluated job.
func (s *jobService) mutate(ctx context.Context, jobID, userID string, allowClosed bool, event string, change func(*domain.Job) error) (*domain.BilledJob, error) {
	tx, err := s.jobRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.jobRepo.Rollback(ctx, tx) }()

	job, err := s.jobRepo.FindJobByIDForUpdate(ctx, tx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	if !allowClosed && job.IsClosed() {
		s.LogWarn(ctx, "Rejected change to closed job", slog.String("job_id", jobID), slog.String("event", event))
		return nil, apperrors.ErrJobClosed
	}
	if err := change(job); err != nil {
		return nil, err
	}
	job.Touch(userID, s.Now())

	if err := s.jobRepo.UpdateJobInTx(ctx, tx, *job); err != nil {
		s.LogError(ctx, err, "Failed to update job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if err := s.jobRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit job update", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to commit job update: %w", err)
	}

	s.LogInfo(ctx, "Job updated", slog.String("job_id", jobID), slog.String("event", event))
	s.Track(userID, event, map[string]any{"job_id": jobID})
	return s.evaluate(ctx, *job)
}

func (s *jobService) evaluate(ctx context.Context, job domain.Job) (*domain.BilledJob, error) {
	payments, err := s.paymentRepo.FindPaymentsByJobID(ctx, job.JobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments", slog.String("job_id", job.JobID))
		return nil, fmt.Errorf("failed to load payments for job %s: %w", job.JobID, err)
	}
	billed := billing.Evaluate(job, payments, s.Now())
	return &billed, nil
}
