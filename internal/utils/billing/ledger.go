package billing

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildLedger lists non-voided payments in payment-date order with the running
// paid total and running balance after each line.
func BuildLedger(job domain.Job, payments []domain.Payment, now time.Time) domain.Ledger {
	active := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if !p.IsVoided() {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].PaymentDate.Equal(active[j].PaymentDate) {
			return active[i].PaymentDate.Before(active[j].PaymentDate)
		}
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	net := ResolveNetPayable(job)
	paid := decimal.Zero
	lines := make([]domain.LedgerLine, 0, len(active))
	for _, p := range active {
		amount := SanitizeAmount(p.Amount)
		paid = paid.Add(amount)
		lines = append(lines, domain.LedgerLine{
			Payment:     p,
			Amount:      amount,
			RunningPaid: paid,
			RunningDue:  clampZero(net.Sub(paid)),
		})
	}

	figures := ComputeFigures(job, active)
	return domain.Ledger{
		Job:           job,
		Lines:         lines,
		Figures:       figures,
		PaymentStatus: ClassifyPaymentStatus(figures.NetPayable, figures.TotalPaid, figures.BalanceDue, job.DueDate, now),
	}
}

// Reconcile matches an externally issued invoice against the job's computed net payable.
// Amounts within Epsilon of each other are a match.
func Reconcile(job domain.Job, figures domain.Figures, invoiceNumber string, invoiceAmount decimal.Decimal, invoiceDueDate *time.Time) domain.Reconciliation {
	diff := invoiceAmount.Sub(figures.NetPayable)
	return domain.Reconciliation{
		JobID:                job.JobID,
		InvoiceNumber:        invoiceNumber,
		InvoiceNumberMatches: job.InvoiceNumber != "" && strings.EqualFold(strings.TrimSpace(job.InvoiceNumber), strings.TrimSpace(invoiceNumber)),
		InvoiceAmount:        invoiceAmount,
		NetPayable:           figures.NetPayable,
		Difference:           diff,
		Matched:              diff.Abs().LessThanOrEqual(Epsilon),
		DueDateMatches:       sameDate(job.DueDate, invoiceDueDate),
	}
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
