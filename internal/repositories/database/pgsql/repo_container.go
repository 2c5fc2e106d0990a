package pgsql

import (
	portsrepo "github.com/SscSPs/workshop_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories to a pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JobRepo:     newPgxJobRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
	}
}
