package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
)

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepositoryWithTx = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context, filter portsrepo.JobListFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListAllJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepository) FindJobByIDForUpdate(ctx context.Context, tx pgx.Tx, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, tx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJobInTx(ctx context.Context, tx pgx.Tx, job domain.Job) error {
	return m.Called(ctx, tx, job).Error(0)
}

func (m *MockJobRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockJobRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJobRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByJobID(ctx context.Context, jobID string) ([]domain.Payment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByJobIDs(ctx context.Context, jobIDs []string) (map[string][]domain.Payment, error) {
	args := m.Called(ctx, jobIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAllPayments(ctx context.Context) (map[string][]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

func (m *MockPaymentRepository) VoidPaymentInTx(ctx context.Context, tx pgx.Tx, jobID string, paymentID string, userID string, now time.Time) error {
	return m.Called(ctx, tx, jobID, paymentID, userID, now).Error(0)
}

// --- Mock EventTracker ---
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}
