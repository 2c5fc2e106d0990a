package services

import (
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The options (clock, timezone, analytics) are shared by every service.
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Job:      NewJobService(repos.JobRepo, repos.PaymentRepo, opts...),
		Payment:  NewPaymentService(repos.JobRepo, repos.PaymentRepo, opts...),
		Accounts: NewAccountsService(repos.JobRepo, repos.PaymentRepo, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.JobSvcFacade      = (*jobService)(nil)
	_ portssvc.PaymentSvcFacade  = (*paymentService)(nil)
	_ portssvc.AccountsSvcFacade = (*accountsService)(nil)
)
