package services

import (
	"context"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
)

// AccountsSvcFacade defines the accounts (billing) views over jobs and payments
type AccountsSvcFacade interface {
	// Overview partitions a job snapshot into accounts tabs with per-tab totals.
	Overview(ctx context.Context, scope string) (*domain.AccountsOverview, error)

	// Ledger returns the chronological payment history of a job.
	Ledger(ctx context.Context, jobID string) (*domain.Ledger, error)

	// Reconcile compares an externally issued invoice with the job's net payable.
	Reconcile(ctx context.Context, jobID string, req dto.ReconcileRequest) (*domain.Reconciliation, error)
}
