package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus is the invoicing state of a job.
type BillingStatus string

const (
	BillingDraft    BillingStatus = "draft"
	BillingInvoiced BillingStatus = "invoiced"
	BillingClosed   BillingStatus = "closed" // terminal, freezes payments and billing edits
)

// JobStatus is the operational lifecycle status of a job (intake -> installer work -> delivery).
// Values are free-form strings owned by the workshop; only the terminal family matters to billing.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobDelivered  JobStatus = "delivered"
)

// terminalStatuses lists the normalized lifecycle values that settle a job.
var terminalStatuses = map[string]struct{}{
	"completed":          {},
	"complete":           {},
	"delivered":          {},
	"vehicle_delivered":  {},
	"delivery_completed": {},
}

// Normalize lowercases the status and folds spaces and hyphens to underscores.
func (s JobStatus) Normalize() string {
	v := strings.ToLower(strings.TrimSpace(string(s)))
	v = strings.ReplaceAll(v, "-", "_")
	return strings.Join(strings.Fields(strings.ReplaceAll(v, "_", " ")), "_")
}

// IsTerminal reports whether the status belongs to the completed/delivered family.
// Unknown values are never terminal.
func (s JobStatus) IsTerminal() bool {
	_, ok := terminalStatuses[s.Normalize()]
	return ok
}

// Job is a vehicle intake record together with its billing fields.
// Optional amounts are nil when the value was never set; the billing engine
// resolves them through its fallback chain.
type Job struct {
	JobID         string    `json:"jobID"`
	VehicleNumber string    `json:"vehicleNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	InstallerName string    `json:"installerName"`
	Description   string    `json:"description"`
	Status        JobStatus `json:"status"`

	TotalAmount        *decimal.Decimal `json:"totalAmount,omitempty"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	DiscountOfferedBy  string           `json:"discountOfferedBy,omitempty"`
	DiscountReason     string           `json:"discountReason,omitempty"`
	TaxAmount          *decimal.Decimal `json:"taxAmount,omitempty"`
	NetPayable         *decimal.Decimal `json:"netPayable,omitempty"`
	FinalAmount        *decimal.Decimal `json:"finalAmount,omitempty"`

	InvoiceNumber string        `json:"invoiceNumber,omitempty"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
	BillingStatus BillingStatus `json:"billingStatus"`

	// Notes is the legacy free-text column. Older rows keep discount and invoice data
	// here as a JSON blob; see billing.ParseLegacyNotes.
	Notes string `json:"notes,omitempty"`

	AuditFields
}

// IsClosed reports whether billing on the job is frozen.
func (j *Job) IsClosed() bool {
	return j.BillingStatus == BillingClosed
}
