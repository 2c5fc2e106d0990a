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

type PaymentServiceTestSuite struct {
	suite.Suite
	jobRepo     *MockJobRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.PaymentSvcFacade
	ctx         context.Context
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.jobRepo = new(MockJobRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	ist := time.FixedZone("IST", 5*60*60+30*60)
	suite.service = services.NewPaymentService(suite.jobRepo, suite.paymentRepo,
		services.WithClock(fixedClock),
		services.WithLocation(ist))
	suite.ctx = context.Background()
}

func (suite *PaymentServiceTestSuite) expectLockedJob(job *domain.Job) {
	suite.jobRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.jobRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()
	suite.jobRepo.On("FindJobByIDForUpdate", mock.Anything, mock.Anything, job.JobID).Return(job, nil).Once()
}

func (suite *PaymentServiceTestSuite) TestAddPayment_Success() {
	job := newJob("j1", "1000", fixedNow)
	suite.expectLockedJob(&job)
	suite.paymentRepo.On("SavePaymentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.JobID == "j1" && p.Amount.Valid && p.Amount.Value.Equal(dec("300")) && p.PaymentMethod == "upi"
	})).Return(nil).Once()
	suite.jobRepo.On("UpdateJobInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(j domain.Job) bool {
		return j.LastUpdatedBy == "user-9" && j.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	suite.jobRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.AddPayment(suite.ctx, "j1", dto.AddPaymentRequest{
		Amount:          domain.ParseAmount("300"),
		PaymentMethod:   "upi",
		PaymentDate:     strPtr("2024-06-14"),
		ReferenceNumber: " UTR123 ",
	}, "user-9")

	suite.Require().NoError(err)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal("UTR123", payment.ReferenceNumber)
	suite.Equal("2024-06-14", payment.PaymentDate.Format(dto.DateLayout))
	suite.Equal("IST", payment.PaymentDate.Location().String())
	suite.Equal("user-9", payment.CreatedBy)
	suite.jobRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_DefaultsPaymentDateToNow() {
	job := newJob("j1", "1000", fixedNow)
	suite.expectLockedJob(&job)
	suite.paymentRepo.On("SavePaymentInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.jobRepo.On("UpdateJobInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.jobRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.AddPayment(suite.ctx, "j1", dto.AddPaymentRequest{
		Amount:        domain.ParseAmount(250.5),
		PaymentMethod: "cash",
	}, "user-9")

	suite.Require().NoError(err)
	suite.Equal(fixedNow, payment.PaymentDate)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_RejectsNonPositiveAmounts() {
	for _, amount := range []domain.Amount{
		domain.ParseAmount("0"),
		domain.ParseAmount("-50"),
		domain.ParseAmount("abc"),
		{},
	} {
		_, err := suite.service.AddPayment(suite.ctx, "j1", dto.AddPaymentRequest{
			Amount:        amount,
			PaymentMethod: "cash",
		}, "user-9")
		suite.True(errors.Is(err, apperrors.ErrValidation), "amount %v", amount)
	}
	suite.jobRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_RejectedWhenClosed() {
	job := newJob("j1", "1000", fixedNow)
	job.BillingStatus = domain.BillingClosed
	suite.expectLockedJob(&job)

	_, err := suite.service.AddPayment(suite.ctx, "j1", dto.AddPaymentRequest{
		Amount:        domain.ParseAmount("100"),
		PaymentMethod: "cash",
	}, "user-9")

	suite.True(errors.Is(err, apperrors.ErrJobClosed))
	suite.paymentRepo.AssertNotCalled(suite.T(), "SavePaymentInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.jobRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_JobNotFound() {
	suite.jobRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.jobRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()
	suite.jobRepo.On("FindJobByIDForUpdate", mock.Anything, mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddPayment(suite.ctx, "missing", dto.AddPaymentRequest{
		Amount:        domain.ParseAmount("100"),
		PaymentMethod: "cash",
	}, "user-9")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *PaymentServiceTestSuite) TestListPayments_EmptySlice() {
	job := newJob("j1", "1000", fixedNow)
	suite.jobRepo.On("FindJobByID", mock.Anything, "j1").Return(&job, nil).Once()
	suite.paymentRepo.On("FindPaymentsByJobID", mock.Anything, "j1").Return(nil, nil).Once()

	payments, err := suite.service.ListPayments(suite.ctx, "j1")

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)
}

func (suite *PaymentServiceTestSuite) TestListPayments_JobNotFound() {
	suite.jobRepo.On("FindJobByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListPayments(suite.ctx, "missing")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.paymentRepo.AssertNotCalled(suite.T(), "FindPaymentsByJobID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestVoidPayment_Success() {
	job := newJob("j1", "1000", fixedNow)
	suite.expectLockedJob(&job)
	suite.paymentRepo.On("VoidPaymentInTx", mock.Anything, mock.Anything, "j1", "p1", "user-9", fixedNow).Return(nil).Once()
	suite.jobRepo.On("UpdateJobInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.jobRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	err := suite.service.VoidPayment(suite.ctx, "j1", "p1", "user-9")

	suite.Require().NoError(err)
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.jobRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestVoidPayment_UnknownPayment() {
	job := newJob("j1", "1000", fixedNow)
	suite.expectLockedJob(&job)
	suite.paymentRepo.On("VoidPaymentInTx", mock.Anything, mock.Anything, "j1", "nope", "user-9", fixedNow).Return(apperrors.ErrNotFound).Once()

	err := suite.service.VoidPayment(suite.ctx, "j1", "nope", "user-9")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.jobRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestVoidPayment_RejectedWhenClosed() {
	job := newJob("j1", "1000", fixedNow)
	job.BillingStatus = domain.BillingClosed
	suite.expectLockedJob(&job)

	err := suite.service.VoidPayment(suite.ctx, "j1", "p1", "user-9")

	suite.True(errors.Is(err, apperrors.ErrJobClosed))
	suite.paymentRepo.AssertNotCalled(suite.T(), "VoidPaymentInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
