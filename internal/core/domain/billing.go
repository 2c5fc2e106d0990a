package domain

import "github.com/shopspring/decimal"

// PaymentStatus is derived from a job's figures on every read and never stored.
type PaymentStatus string

const (
	PaymentDraft         PaymentStatus = "draft"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentOverdue       PaymentStatus = "overdue"
)

// Bucket is the accounts tab a job belongs to. Every job maps to exactly one bucket.
type Bucket string

const (
	BucketBillingEntries Bucket = "billing_entries"
	BucketPartialPayment Bucket = "partial_payment"
	BucketOverdue        Bucket = "overdue"
	BucketSettled        Bucket = "settled"
)

// AllBuckets returns the buckets in tab order.
func AllBuckets() []Bucket {
	return []Bucket{BucketBillingEntries, BucketPartialPayment, BucketOverdue, BucketSettled}
}

// Figures are the canonical billing amounts of a job.
type Figures struct {
	NetPayable decimal.Decimal `json:"netPayable"`
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	BalanceDue decimal.Decimal `json:"balanceDue"`
}

// BilledJob is a job with its computed billing state.
type BilledJob struct {
	Job           Job           `json:"job"`
	Figures       Figures       `json:"figures"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Bucket        Bucket        `json:"bucket"`
	DisplayID     string        `json:"displayID,omitempty"`
}

// LedgerLine is one payment in a job's ledger with running totals after it.
type LedgerLine struct {
	Payment     Payment         `json:"payment"`
	Amount      decimal.Decimal `json:"amount"` // sanitized amount that counted towards totals
	RunningPaid decimal.Decimal `json:"runningPaid"`
	RunningDue  decimal.Decimal `json:"runningDue"`
}

// Ledger is the chronological payment history of a job.
type Ledger struct {
	Job           Job           `json:"job"`
	Lines         []LedgerLine  `json:"lines"`
	Figures       Figures       `json:"figures"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// BucketSummary aggregates the jobs of one bucket.
type BucketSummary struct {
	Bucket          Bucket          `json:"bucket"`
	Count           int             `json:"count"`
	TotalNetPayable decimal.Decimal `json:"totalNetPayable"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalBalanceDue decimal.Decimal `json:"totalBalanceDue"`
}

// AccountsOverview is the partitioned accounts view over one job snapshot.
// DisplayIDs are positional within Scope; a job fetched under a different scope
// may receive a different display ID.
type AccountsOverview struct {
	Scope     string                   `json:"scope"`
	Buckets   map[Bucket][]BilledJob   `json:"buckets"`
	Summaries map[Bucket]BucketSummary `json:"summaries"`
}

// Reconciliation compares an externally issued invoice with the computed net payable.
type Reconciliation struct {
	JobID                string          `json:"jobID"`
	InvoiceNumber        string          `json:"invoiceNumber"`
	InvoiceNumberMatches bool            `json:"invoiceNumberMatches"`
	InvoiceAmount        decimal.Decimal `json:"invoiceAmount"`
	NetPayable           decimal.Decimal `json:"netPayable"`
	Difference           decimal.Decimal `json:"difference"` // invoice amount minus net payable
	Matched              bool            `json:"matched"`
	DueDateMatches       bool            `json:"dueDateMatches"`
}
