package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/core/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
)

type AccountsServiceTestSuite struct {
	suite.Suite
	jobRepo     *MockJobRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.AccountsSvcFacade
	ctx         context.Context
}

func TestAccountsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountsServiceTestSuite))
}

func (suite *AccountsServiceTestSuite) SetupTest() {
	suite.jobRepo = new(MockJobRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.service = services.NewAccountsService(suite.jobRepo, suite.paymentRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

// snapshot returns one job per bucket. The delivered job is the oldest.
func (suite *AccountsServiceTestSuite) snapshot() ([]domain.Job, map[string][]domain.Payment) {
	base := fixedNow.AddDate(0, -1, 0)
	yesterday := fixedNow.AddDate(0, 0, -1)

	draft := newJob("a", "1000", base.Add(1*time.Hour))
	partial := newJob("b", "1000", base.Add(2*time.Hour))
	overdue := newJob("c", "2000", base.Add(3*time.Hour))
	overdue.DueDate = &yesterday
	delivered := newJob("d", "500", base)
	delivered.Status = domain.JobDelivered

	jobs := []domain.Job{delivered, overdue, partial, draft}
	payments := map[string][]domain.Payment{
		"b": {newPayment("b", "p1", "400", base)},
		"c": {newPayment("c", "p2", "500", base), newPayment("c", "p3", "not-a-number", base)},
	}
	return jobs, payments
}

func (suite *AccountsServiceTestSuite) TestOverview_PartitionsAllJobs() {
	jobs, payments := suite.snapshot()
	suite.jobRepo.On("ListAllJobs", mock.Anything).Return(jobs, nil).Once()
	suite.paymentRepo.On("FindAllPayments", mock.Anything).Return(payments, nil).Once()

	overview, err := suite.service.Overview(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Equal(services.ScopeAll, overview.Scope)
	suite.Require().Len(overview.Buckets[domain.BucketBillingEntries], 1)
	suite.Require().Len(overview.Buckets[domain.BucketPartialPayment], 1)
	suite.Require().Len(overview.Buckets[domain.BucketOverdue], 1)
	suite.Require().Len(overview.Buckets[domain.BucketSettled], 1)

	suite.Equal("a", overview.Buckets[domain.BucketBillingEntries][0].Job.JobID)
	suite.Equal("Z01", overview.Buckets[domain.BucketSettled][0].DisplayID)
	suite.Equal("Z02", overview.Buckets[domain.BucketBillingEntries][0].DisplayID)
	suite.Equal("Z04", overview.Buckets[domain.BucketOverdue][0].DisplayID)

	overdue := overview.Summaries[domain.BucketOverdue]
	suite.Equal(1, overdue.Count)
	suite.True(dec("2000").Equal(overdue.TotalNetPayable))
	suite.True(dec("500").Equal(overdue.TotalPaid))
	suite.True(dec("1500").Equal(overdue.TotalBalanceDue))
}

func (suite *AccountsServiceTestSuite) TestOverview_OpenScopeRenumbersSnapshot() {
	jobs, payments := suite.snapshot()
	suite.jobRepo.On("ListAllJobs", mock.Anything).Return(jobs, nil).Once()
	suite.paymentRepo.On("FindAllPayments", mock.Anything).Return(payments, nil).Once()

	overview, err := suite.service.Overview(suite.ctx, " OPEN ")

	suite.Require().NoError(err)
	suite.Equal(services.ScopeOpen, overview.Scope)
	suite.Empty(overview.Buckets[domain.BucketSettled])
	suite.Equal(0, overview.Summaries[domain.BucketSettled].Count)
	suite.Equal("Z01", overview.Buckets[domain.BucketBillingEntries][0].DisplayID)
	suite.Equal("Z03", overview.Buckets[domain.BucketOverdue][0].DisplayID)
}

func (suite *AccountsServiceTestSuite) TestOverview_UnknownScope() {
	_, err := suite.service.Overview(suite.ctx, "closed")

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.jobRepo.AssertNotCalled(suite.T(), "ListAllJobs", mock.Anything)
}

func (suite *AccountsServiceTestSuite) TestOverview_LoadFailure() {
	boom := errors.New("connection reset")
	suite.jobRepo.On("ListAllJobs", mock.Anything).Return(nil, boom).Once()
	suite.paymentRepo.On("FindAllPayments", mock.Anything).Return(map[string][]domain.Payment{}, nil).Maybe()

	_, err := suite.service.Overview(suite.ctx, services.ScopeAll)

	suite.ErrorIs(err, boom)
}

func (suite *AccountsServiceTestSuite) TestLedger_RunningTotals() {
	job := newJob("j1", "1000", fixedNow.AddDate(0, -1, 0))
	suite.jobRepo.On("FindJobByID", mock.Anything, "j1").Return(&job, nil).Once()
	suite.paymentRepo.On("FindPaymentsByJobID", mock.Anything, "j1").Return([]domain.Payment{
		newPayment("j1", "p1", "300", fixedNow.AddDate(0, 0, -20)),
		newPayment("j1", "p2", "450", fixedNow.AddDate(0, 0, -5)),
	}, nil).Once()

	ledger, err := suite.service.Ledger(suite.ctx, "j1")

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Lines, 2)
	suite.True(dec("700").Equal(ledger.Lines[0].RunningDue))
	suite.True(dec("750").Equal(ledger.Lines[1].RunningPaid))
	suite.True(dec("250").Equal(ledger.Figures.BalanceDue))
	suite.Equal(domain.PaymentPartiallyPaid, ledger.PaymentStatus)
}

func (suite *AccountsServiceTestSuite) TestLedger_NotFound() {
	suite.jobRepo.On("FindJobByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Ledger(suite.ctx, "missing")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *AccountsServiceTestSuite) TestReconcile() {
	job := newJob("j1", "1000", fixedNow)
	job.DiscountAmount = decPtr("100")
	job.TaxAmount = decPtr("162")
	job.InvoiceNumber = "INV-1"
	due := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	job.DueDate = &due

	testCases := []struct {
		name        string
		req         dto.ReconcileRequest
		wantMatched bool
		wantDiff    string
		wantNumber  bool
		wantDue     bool
	}{
		{
			name:        "exact match",
			req:         dto.ReconcileRequest{InvoiceNumber: "inv-1", InvoiceAmount: dec("1062"), DueDate: strPtr("2024-06-30")},
			wantMatched: true, wantDiff: "0", wantNumber: true, wantDue: true,
		},
		{
			name:        "within a paisa",
			req:         dto.ReconcileRequest{InvoiceNumber: "INV-1", InvoiceAmount: dec("1062.01")},
			wantMatched: true, wantDiff: "0.01", wantNumber: true, wantDue: false,
		},
		{
			name:        "under invoiced",
			req:         dto.ReconcileRequest{InvoiceNumber: "INV-2", InvoiceAmount: dec("1000")},
			wantMatched: false, wantDiff: "-62", wantNumber: false, wantDue: false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.jobRepo.On("FindJobByID", mock.Anything, "j1").Return(&job, nil).Once()
			suite.paymentRepo.On("FindPaymentsByJobID", mock.Anything, "j1").Return([]domain.Payment{}, nil).Once()

			result, err := suite.service.Reconcile(suite.ctx, "j1", tc.req)

			suite.Require().NoError(err)
			suite.Equal(tc.wantMatched, result.Matched)
			suite.True(dec(tc.wantDiff).Equal(result.Difference), "difference %s", result.Difference)
			suite.Equal(tc.wantNumber, result.InvoiceNumberMatches)
			suite.Equal(tc.wantDue, result.DueDateMatches)
			suite.True(dec("1062").Equal(result.NetPayable))
		})
	}
}

func (suite *AccountsServiceTestSuite) TestReconcile_NegativeInvoiceAmount() {
	_, err := suite.service.Reconcile(suite.ctx, "j1", dto.ReconcileRequest{InvoiceNumber: "INV-1", InvoiceAmount: dec("-1")})

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.jobRepo.AssertNotCalled(suite.T(), "FindJobByID", mock.Anything, mock.Anything)
}
