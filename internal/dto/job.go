package dto

import (
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates (due dates, invoice dates).
const DateLayout = "2006-01-02"

// CreateJobRequest is the vehicle intake payload.
type CreateJobRequest struct {
	VehicleNumber      string           `json:"vehicleNumber" binding:"required,max=32"`
	CustomerName       string           `json:"customerName" binding:"required,max=128"`
	CustomerPhone      string           `json:"customerPhone" binding:"omitempty,max=32"`
	InstallerName      string           `json:"installerName" binding:"omitempty,max=128"`
	Description        string           `json:"description"`
	Status             *string          `json:"status" binding:"omitempty,max=64"`
	TotalAmount        *decimal.Decimal `json:"totalAmount" binding:"omitempty,gte=0"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount" binding:"omitempty,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" binding:"omitempty,gte=0,lte=100"`
	DiscountOfferedBy  string           `json:"discountOfferedBy"`
	DiscountReason     string           `json:"discountReason"`
	TaxAmount          *decimal.Decimal `json:"taxAmount" binding:"omitempty,gte=0"`
	DueDate            *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes              string           `json:"notes"`
}

// UpdateJobBillingRequest changes billing fields. Nil fields are left untouched.
type UpdateJobBillingRequest struct {
	TotalAmount        *decimal.Decimal `json:"totalAmount" binding:"omitempty,gte=0"`
	DiscountAmount     *decimal.Decimal `json:"discountAmount" binding:"omitempty,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" binding:"omitempty,gte=0,lte=100"`
	DiscountOfferedBy  *string          `json:"discountOfferedBy"`
	DiscountReason     *string          `json:"discountReason"`
	TaxAmount          *decimal.Decimal `json:"taxAmount" binding:"omitempty,gte=0"`
	DueDate            *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate       bool             `json:"clearDueDate"`
}

// UpdateJobStatusRequest moves the job through its operational lifecycle.
type UpdateJobStatusRequest struct {
	Status        string  `json:"status" binding:"required,max=64"`
	InstallerName *string `json:"installerName" binding:"omitempty,max=128"`
}

// SetInvoiceNumberRequest attaches an invoice number to a job.
type SetInvoiceNumberRequest struct {
	InvoiceNumber string `json:"invoiceNumber" binding:"required,max=64"`
}

// ListJobsParams defines query parameters for listing jobs.
type ListJobsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
	Status    string  `form:"status"`
	Search    string  `form:"search"`
}

// JobResponse is a job with its computed billing state.
type JobResponse struct {
	domain.Job
	Figures       domain.Figures       `json:"figures"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	Bucket        domain.Bucket        `json:"bucket"`
	DisplayID     string               `json:"displayID,omitempty"`
}

// ListJobsResponse wraps a page of jobs.
type ListJobsResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// ToJobResponse converts a billed job to its response.
func ToJobResponse(bj domain.BilledJob) JobResponse {
	return JobResponse{
		Job:           bj.Job,
		Figures:       bj.Figures,
		PaymentStatus: bj.PaymentStatus,
		Bucket:        bj.Bucket,
		DisplayID:     bj.DisplayID,
	}
}

// ToListJobResponse converts a slice of billed jobs.
func ToListJobResponse(jobs []domain.BilledJob) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i, bj := range jobs {
		res[i] = ToJobResponse(bj)
	}
	return res
}

// ParseDate reads an optional YYYY-MM-DD date in the given location.
func ParseDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, *value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// BackfillResult reports what a legacy notes backfill changed. SkippedJobIDs
// lists jobs left untouched because their notes clashed with a unique value,
// such as an invoice number already in use.
type BackfillResult struct {
	Scanned       int      `json:"scanned"`
	Updated       int      `json:"updated"`
	JobIDs        []string `json:"jobIDs"`
	SkippedJobIDs []string `json:"skippedJobIDs"`
	DryRun        bool     `json:"dryRun"`
}
