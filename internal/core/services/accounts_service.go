package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/utils/billing"
)

// Overview scopes.
const (
	ScopeAll  = "all"
	ScopeOpen = "open" // jobs whose lifecycle status is not terminal
)

// accountsService builds the accounts views. It never writes.
type accountsService struct {
	BaseService
	jobRepo     portsrepo.JobReader
	paymentRepo portsrepo.PaymentReader
}

// NewAccountsService creates a new AccountsService.
func NewAccountsService(jobRepo portsrepo.JobReader, paymentRepo portsrepo.PaymentReader, opts ...Option) portssvc.AccountsSvcFacade {
	return &accountsService{
		BaseService: newBaseService(opts),
		jobRepo:     jobRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.AccountsSvcFacade = (*accountsService)(nil)

// Overview loads one snapshot of jobs and payments and partitions it into tabs.
func (s *accountsService) Overview(ctx context.Context, scope string) (*domain.AccountsOverview, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		scope = ScopeAll
	}
	if scope != ScopeAll && scope != ScopeOpen {
		return nil, fmt.Errorf("%w: unknown scope %q", apperrors.ErrValidation, scope)
	}

	var (
		jobs     []domain.Job
		payments map[string][]domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.ListAllJobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.FindAllPayments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load accounts snapshot", slog.String("scope", scope))
		return nil, fmt.Errorf("failed to load accounts snapshot: %w", err)
	}

	if scope == ScopeOpen {
		open := jobs[:0:0]
		for _, j := range jobs {
			if !j.Status.IsTerminal() {
				open = append(open, j)
			}
		}
		jobs = open
	}

	partition := billing.PartitionJobs(jobs, payments, s.Now())
	overview := &domain.AccountsOverview{
		Scope:     scope,
		Buckets:   partition,
		Summaries: billing.Summarize(partition),
	}
	s.LogDebug(ctx, "Accounts overview built", slog.String("scope", scope), slog.Int("job_count", len(jobs)))
	return overview, nil
}

// Ledger returns the running payment history of a job.
func (s *accountsService) Ledger(ctx context.Context, jobID string) (*domain.Ledger, error) {
	job, payments, err := s.load(ctx, jobID)
	if err != nil {
		return nil, err
	}
	ledger := billing.BuildLedger(*job, payments, s.Now())
	return &ledger, nil
}

// Reconcile compares an external invoice with the computed net payable.
func (s *accountsService) Reconcile(ctx context.Context, jobID string, req dto.ReconcileRequest) (*domain.Reconciliation, error) {
	if req.InvoiceAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice amount must not be negative", apperrors.ErrValidation)
	}
	dueDate, err := dto.ParseDate(req.DueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %v", apperrors.ErrValidation, err)
	}

	job, payments, err := s.load(ctx, jobID)
	if err != nil {
		return nil, err
	}
	figures := billing.ComputeFigures(*job, payments)
	result := billing.Reconcile(*job, figures, req.InvoiceNumber, req.InvoiceAmount, dueDate)
	if !result.Matched {
		s.LogInfo(ctx, "Invoice does not reconcile",
			slog.String("job_id", jobID),
			slog.String("difference", result.Difference.String()))
	}
	return &result, nil
}

func (s *accountsService) load(ctx context.Context, jobID string) (*domain.Job, []domain.Payment, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job", slog.String("job_id", jobID))
		}
		return nil, nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByJobID(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments", slog.String("job_id", jobID))
		return nil, nil, fmt.Errorf("failed to load payments for job %s: %w", jobID, err)
	}
	return job, payments, nil
}
