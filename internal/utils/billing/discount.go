package billing

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount returns the final amount after discount, never below zero.
func ApplyDiscount(totalAmount, discountAmount decimal.Decimal) decimal.Decimal {
	return clampZero(totalAmount.Sub(discountAmount))
}

// DiscountPercentage returns the explicit percentage when given, otherwise
// discount / total * 100 rounded to two places, or zero when total is not positive.
func DiscountPercentage(totalAmount, discountAmount decimal.Decimal, explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	if !totalAmount.IsPositive() {
		return decimal.Zero
	}
	return discountAmount.Div(totalAmount).Mul(hundred).Round(2)
}

// DeriveBilling recomputes the stored derived fields of a job after its
// discount or total changed. A percentage without an amount yields the amount;
// the discount never exceeds the total; net payable is persisted so later reads
// need no fallback.
func DeriveBilling(job *domain.Job, explicitPct *decimal.Decimal) {
	if job.TotalAmount == nil {
		job.DiscountPercentage = explicitPct
		job.FinalAmount = nil
		job.NetPayable = nil
		return
	}
	total := *job.TotalAmount
	if job.DiscountAmount == nil && explicitPct != nil && total.IsPositive() {
		d := total.Mul(*explicitPct).Div(hundred).Round(2)
		job.DiscountAmount = &d
	}
	discount := decimal.Zero
	if job.DiscountAmount != nil {
		discount = decimal.Min(decimal.Max(*job.DiscountAmount, decimal.Zero), total)
		job.DiscountAmount = &discount
	}

	final := ApplyDiscount(total, discount)
	pct := DiscountPercentage(total, discount, explicitPct)
	job.FinalAmount = &final
	job.DiscountPercentage = &pct

	job.NetPayable = nil
	net := ResolveNetPayable(*job)
	job.NetPayable = &net
}
