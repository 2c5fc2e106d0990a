package dto

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OverviewParams selects the job snapshot of the accounts overview.
// Scope "all" includes settled jobs; "open" leaves them out.
type OverviewParams struct {
	Scope string `form:"scope,default=all" binding:"oneof=all open"`
}

// OverviewResponse is the tabbed accounts view.
type OverviewResponse struct {
	Scope     string                          `json:"scope"`
	Tabs      map[domain.Bucket][]JobResponse `json:"tabs"`
	Summaries []domain.BucketSummary          `json:"summaries"`
}

// ToOverviewResponse flattens the overview into tab order.
func ToOverviewResponse(o *domain.AccountsOverview) OverviewResponse {
	resp := OverviewResponse{
		Scope:     o.Scope,
		Tabs:      make(map[domain.Bucket][]JobResponse, len(o.Buckets)),
		Summaries: make([]domain.BucketSummary, 0, len(o.Summaries)),
	}
	for _, b := range domain.AllBuckets() {
		if entries, ok := o.Buckets[b]; ok {
			resp.Tabs[b] = ToListJobResponse(entries)
		}
		if s, ok := o.Summaries[b]; ok {
			resp.Summaries = append(resp.Summaries, s)
		}
	}
	return resp
}

// ReconcileRequest carries the externally issued invoice to compare.
type ReconcileRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required,max=64"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount" binding:"gte=0"`
	DueDate       *string         `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}
