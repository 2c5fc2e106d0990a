package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/utils/billing"
)

// paymentService records and voids payments against jobs.
type paymentService struct {
	BaseService
	jobRepo     portsrepo.JobRepositoryWithTx
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(jobRepo portsrepo.JobRepositoryWithTx, paymentRepo portsrepo.PaymentRepositoryFacade, opts ...Option) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(opts),
		jobRepo:     jobRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// AddPayment records a positive amount against an open job.
func (s *paymentService) AddPayment(ctx context.Context, jobID string, req dto.AddPaymentRequest, userID string) (*domain.Payment, error) {
	amount := billing.SanitizeAmount(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be a number greater than zero", apperrors.ErrValidation)
	}
	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		return nil, fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}
	paymentDate, err := dto.ParseDate(req.PaymentDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment date: %v", apperrors.ErrValidation, err)
	}

	now := s.Now()
	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		JobID:           jobID,
		Amount:          domain.NewAmount(amount),
		PaymentMethod:   method,
		PaymentDate:     now,
		ReferenceNumber: strings.TrimSpace(req.ReferenceNumber),
		Notes:           req.Notes,
		CreatedAt:       now,
		CreatedBy:       userID,
	}
	if paymentDate != nil {
		payment.PaymentDate = *paymentDate
	}

	err = s.withOpenJob(ctx, jobID, userID, func(tx pgx.Tx) error {
		return s.paymentRepo.SavePaymentInTx(ctx, tx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("job_id", jobID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", amount.String()))
	s.Track(userID, "payment_added", map[string]any{
		"job_id":         jobID,
		"payment_method": method,
		"amount":         amount.StringFixed(2),
	})
	return &payment, nil
}

// ListPayments returns the non-voided payments of an existing job.
func (s *paymentService) ListPayments(ctx context.Context, jobID string) ([]domain.Payment, error) {
	if _, err := s.jobRepo.FindJobByID(ctx, jobID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job", slog.String("job_id", jobID))
		}
		return nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByJobID(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

// VoidPayment removes a payment from every computation. The row is kept for history.
func (s *paymentService) VoidPayment(ctx context.Context, jobID string, paymentID string, userID string) error {
	err := s.withOpenJob(ctx, jobID, userID, func(tx pgx.Tx) error {
		return s.paymentRepo.VoidPaymentInTx(ctx, tx, jobID, paymentID, userID, s.Now())
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Payment voided", slog.String("job_id", jobID), slog.String("payment_id", paymentID))
	s.Track(userID, "payment_voided", map[string]any{"job_id": jobID, "payment_id": paymentID})
	return nil
}

// withOpenJob locks the job row, rejects closed jobs, runs write and stamps the job.
func (s *paymentService) withOpenJob(ctx context.Context, jobID, userID string, write func(tx pgx.Tx) error) error {
	tx, err := s.jobRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("job_id", jobID))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.jobRepo.Rollback(ctx, tx) }()

	job, err := s.jobRepo.FindJobByIDForUpdate(ctx, tx, jobID)
	if err != nil {
		return fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	if job.IsClosed() {
		s.LogWarn(ctx, "Rejected payment change on closed job", slog.String("job_id", jobID))
		return apperrors.ErrJobClosed
	}

	if err := write(tx); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to write payment", slog.String("job_id", jobID))
		}
		return fmt.Errorf("failed to write payment: %w", err)
	}

	job.Touch(userID, s.Now())
	if err := s.jobRepo.UpdateJobInTx(ctx, tx, *job); err != nil {
		s.LogError(ctx, err, "Failed to stamp job", slog.String("job_id", jobID))
		return fmt.Errorf("failed to update job: %w", err)
	}
	if err := s.jobRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment", slog.String("job_id", jobID))
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	return nil
}
