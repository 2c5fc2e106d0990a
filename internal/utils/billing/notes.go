package billing

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LegacyNotes is the billing data older rows stored as a JSON blob in the notes column.
type LegacyNotes struct {
	DiscountAmount     *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	DiscountOfferedBy  string
	DiscountReason     string
	InvoiceNumber      string
}

// IsEmpty reports whether nothing billing-related was found.
func (n LegacyNotes) IsEmpty() bool {
	return n.DiscountAmount == nil && n.DiscountPercentage == nil &&
		n.DiscountOfferedBy == "" && n.DiscountReason == "" && n.InvoiceNumber == ""
}

// ParseLegacyNotes decodes the notes blob. Keys are accepted in camelCase or
// snake_case, at the top level or under a "discount" object (where the short
// forms amount/percentage/offeredBy/reason are also read). Numbers may be JSON
// numbers or numeric strings. Plain text or malformed JSON yields empty notes.
func ParseLegacyNotes(notes string) LegacyNotes {
	var out LegacyNotes
	notes = strings.TrimSpace(notes)
	if !strings.HasPrefix(notes, "{") {
		return out
	}
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(notes), &root); err != nil {
		return out
	}

	fill := func(f map[string]json.RawMessage, short bool) {
		keys := func(long ...string) []string {
			if short {
				return long
			}
			return long[:2]
		}
		if out.DiscountAmount == nil {
			out.DiscountAmount = decimalField(f, keys("discountAmount", "discount_amount", "amount")...)
		}
		if out.DiscountPercentage == nil {
			out.DiscountPercentage = decimalField(f, keys("discountPercentage", "discount_percentage", "percentage")...)
		}
		if out.DiscountOfferedBy == "" {
			out.DiscountOfferedBy = stringField(f, keys("discountOfferedBy", "discount_offered_by", "offeredBy")...)
		}
		if out.DiscountReason == "" {
			out.DiscountReason = stringField(f, keys("discountReason", "discount_reason", "reason")...)
		}
	}

	fill(root, false)
	if raw, ok := lookup(root, "discount"); ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			fill(nested, true)
		}
	}
	out.InvoiceNumber = stringField(root, "invoiceNumber", "invoice_number", "invoiceNo")
	return out
}

// ApplyLegacyNotes copies parsed notes into structured fields the job does not
// already have. It reports whether anything changed. When the discount changes
// and the job has a total, the stored final amount and net payable are derived
// again from it.
func ApplyLegacyNotes(job *domain.Job, notes LegacyNotes) bool {
	changed := false
	discountChanged := false
	// a zero percentage stored beside no amount was derived, not entered
	pctUnset := job.DiscountPercentage == nil || (job.DiscountAmount == nil && job.DiscountPercentage.IsZero())
	if job.DiscountAmount == nil && notes.DiscountAmount != nil {
		d := *notes.DiscountAmount
		job.DiscountAmount = &d
		discountChanged = true
	}
	if pctUnset && notes.DiscountPercentage != nil {
		d := *notes.DiscountPercentage
		job.DiscountPercentage = &d
		discountChanged = true
	} else if pctUnset && discountChanged {
		job.DiscountPercentage = nil
	}
	if job.DiscountOfferedBy == "" && notes.DiscountOfferedBy != "" {
		job.DiscountOfferedBy = notes.DiscountOfferedBy
		changed = true
	}
	if job.DiscountReason == "" && notes.DiscountReason != "" {
		job.DiscountReason = notes.DiscountReason
		changed = true
	}
	if job.InvoiceNumber == "" && notes.InvoiceNumber != "" {
		job.InvoiceNumber = notes.InvoiceNumber
		if job.BillingStatus == domain.BillingDraft || job.BillingStatus == "" {
			job.BillingStatus = domain.BillingInvoiced
		}
		changed = true
	}
	if discountChanged && job.TotalAmount != nil {
		DeriveBilling(job, job.DiscountPercentage)
	}
	return changed || discountChanged
}

func lookup(m map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func decimalField(m map[string]json.RawMessage, keys ...string) *decimal.Decimal {
	raw, ok := lookup(m, keys...)
	if !ok {
		return nil
	}
	var a domain.Amount
	_ = a.UnmarshalJSON(raw)
	if !a.Valid || a.Value.IsNegative() {
		return nil
	}
	return &a.Value
}

func stringField(m map[string]json.RawMessage, keys ...string) string {
	raw, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		s = n.String()
	}
	return strings.TrimSpace(s)
}
