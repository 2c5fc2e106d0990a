package mapping

import (
	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/models"
)

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:              d.JobID,
		VehicleNumber:      d.VehicleNumber,
		CustomerName:       d.CustomerName,
		CustomerPhone:      d.CustomerPhone,
		InstallerName:      d.InstallerName,
		Description:        d.Description,
		Status:             string(d.Status),
		TotalAmount:        toNullDecimal(d.TotalAmount),
		DiscountAmount:     toNullDecimal(d.DiscountAmount),
		DiscountPercentage: toNullDecimal(d.DiscountPercentage),
		DiscountOfferedBy:  d.DiscountOfferedBy,
		DiscountReason:     d.DiscountReason,
		TaxAmount:          toNullDecimal(d.TaxAmount),
		NetPayable:         toNullDecimal(d.NetPayable),
		FinalAmount:        toNullDecimal(d.FinalAmount),
		InvoiceNumber:      toNullString(d.InvoiceNumber),
		DueDate:            toNullTime(d.DueDate),
		BillingStatus:      string(d.BillingStatus),
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:              m.JobID,
		VehicleNumber:      m.VehicleNumber,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		InstallerName:      m.InstallerName,
		Description:        m.Description,
		Status:             domain.JobStatus(m.Status),
		TotalAmount:        fromNullDecimal(m.TotalAmount),
		DiscountAmount:     fromNullDecimal(m.DiscountAmount),
		DiscountPercentage: fromNullDecimal(m.DiscountPercentage),
		DiscountOfferedBy:  m.DiscountOfferedBy,
		DiscountReason:     m.DiscountReason,
		TaxAmount:          fromNullDecimal(m.TaxAmount),
		NetPayable:         fromNullDecimal(m.NetPayable),
		FinalAmount:        fromNullDecimal(m.FinalAmount),
		InvoiceNumber:      m.InvoiceNumber.String,
		DueDate:            fromNullTime(m.DueDate),
		BillingStatus:      domain.BillingStatus(m.BillingStatus),
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJobSlice converts a slice of model Jobs to a slice of domain Jobs
func ToDomainJobSlice(ms []models.Job) []domain.Job {
	ds := make([]domain.Job, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJob(m)
	}
	return ds
}
