package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Job is a row of the jobs table. Optional money columns are nullable numerics.
type Job struct {
	JobID              string              `db:"job_id"`
	VehicleNumber      string              `db:"vehicle_number"`
	CustomerName       string              `db:"customer_name"`
	CustomerPhone      string              `db:"customer_phone"`
	InstallerName      string              `db:"installer_name"`
	Description        string              `db:"description"`
	Status             string              `db:"status"`
	TotalAmount        decimal.NullDecimal `db:"total_amount"`
	DiscountAmount     decimal.NullDecimal `db:"discount_amount"`
	DiscountPercentage decimal.NullDecimal `db:"discount_percentage"`
	DiscountOfferedBy  string              `db:"discount_offered_by"`
	DiscountReason     string              `db:"discount_reason"`
	TaxAmount          decimal.NullDecimal `db:"tax_amount"`
	NetPayable         decimal.NullDecimal `db:"net_payable"`
	FinalAmount        decimal.NullDecimal `db:"final_amount"`
	InvoiceNumber      sql.NullString      `db:"invoice_number"` // unique when present
	DueDate            sql.NullTime        `db:"due_date"`
	BillingStatus      string              `db:"billing_status"`
	Notes              string              `db:"notes"`
	AuditFields
}
