// Package billing computes billing figures and workflow classification for jobs.
// Everything here is a pure function of its arguments: no I/O, no clock reads,
// no package state. Callers pass the job, its payments and the current time.
package billing

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Epsilon is the currency tolerance below which a balance counts as settled.
var Epsilon = decimal.New(1, -2)

// SanitizeAmount returns the amount a payment contributes to totals.
// Invalid, zero and negative amounts contribute exactly zero.
func SanitizeAmount(a domain.Amount) decimal.Decimal {
	if !a.Valid || !a.Value.IsPositive() {
		return decimal.Zero
	}
	return a.Value
}

// ResolveNetPayable walks the net payable fallback chain, first present value wins:
// explicit net payable, total - discount + tax, final amount, total amount, zero.
// Discount is clamped to [0, total] and tax to >= 0. A negative result is clamped to zero.
func ResolveNetPayable(job domain.Job) decimal.Decimal {
	switch {
	case job.NetPayable != nil:
		return clampZero(*job.NetPayable)
	case job.TotalAmount != nil:
		total := clampZero(*job.TotalAmount)
		discount := decimal.Zero
		if job.DiscountAmount != nil {
			discount = decimal.Min(clampZero(*job.DiscountAmount), total)
		}
		tax := decimal.Zero
		if job.TaxAmount != nil {
			tax = clampZero(*job.TaxAmount)
		}
		return total.Sub(discount).Add(tax)
	case job.FinalAmount != nil:
		return clampZero(*job.FinalAmount)
	}
	// The total amount step of the chain is always consumed by the derivation above.
	return decimal.Zero
}

// TotalPaid sums the sanitized amounts of non-voided payments, floored at zero.
func TotalPaid(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.IsVoided() {
			continue
		}
		sum = sum.Add(SanitizeAmount(p.Amount))
	}
	return clampZero(sum)
}

// ComputeFigures derives net payable, total paid and balance due for a job.
// BalanceDue and TotalPaid are never negative.
func ComputeFigures(job domain.Job, payments []domain.Payment) domain.Figures {
	net := ResolveNetPayable(job)
	paid := TotalPaid(payments)
	return domain.Figures{
		NetPayable: net,
		TotalPaid:  paid,
		BalanceDue: clampZero(net.Sub(paid)),
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
