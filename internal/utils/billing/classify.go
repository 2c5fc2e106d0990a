package billing

import (
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClassifyPaymentStatus derives the payment status. Precedence, first match wins:
// nothing paid -> draft, balance within Epsilon -> paid, past due date -> overdue,
// otherwise partially paid. netPayable is accepted for symmetry with Figures;
// balanceDue already reflects it.
func ClassifyPaymentStatus(netPayable, totalPaid, balanceDue decimal.Decimal, dueDate *time.Time, now time.Time) domain.PaymentStatus {
	switch {
	case !totalPaid.IsPositive():
		return domain.PaymentDraft
	case balanceDue.LessThanOrEqual(Epsilon):
		return domain.PaymentPaid
	case isPastDue(dueDate, now):
		return domain.PaymentOverdue
	default:
		return domain.PaymentPartiallyPaid
	}
}

// ClassifyBucket assigns the job to exactly one accounts tab.
// Terminal lifecycle statuses settle the job regardless of what is still owed;
// fully paid jobs that are not yet delivered stay in billing entries.
func ClassifyBucket(job domain.Job, figures domain.Figures, now time.Time) domain.Bucket {
	if job.Status.IsTerminal() {
		return domain.BucketSettled
	}
	owing := figures.TotalPaid.IsPositive() && figures.BalanceDue.GreaterThan(Epsilon)
	switch {
	case owing && isPastDue(job.DueDate, now):
		return domain.BucketOverdue
	case owing:
		return domain.BucketPartialPayment
	default:
		return domain.BucketBillingEntries
	}
}

// Evaluate computes figures, payment status and bucket for a job in one pass.
func Evaluate(job domain.Job, payments []domain.Payment, now time.Time) domain.BilledJob {
	figures := ComputeFigures(job, payments)
	return domain.BilledJob{
		Job:           job,
		Figures:       figures,
		PaymentStatus: ClassifyPaymentStatus(figures.NetPayable, figures.TotalPaid, figures.BalanceDue, job.DueDate, now),
		Bucket:        ClassifyBucket(job, figures, now),
	}
}

// PartitionJobs evaluates every job of a snapshot and groups them by bucket.
// Display IDs are assigned over the whole snapshot before grouping. Every bucket
// key is present in the result, empty buckets hold an empty slice.
func PartitionJobs(jobs []domain.Job, payments map[string][]domain.Payment, now time.Time) map[domain.Bucket][]domain.BilledJob {
	ids := AssignSequentialIDs(jobs)
	out := make(map[domain.Bucket][]domain.BilledJob, len(domain.AllBuckets()))
	for _, b := range domain.AllBuckets() {
		out[b] = []domain.BilledJob{}
	}
	for _, job := range sortByCreatedAt(jobs) {
		billed := Evaluate(job, payments[job.JobID], now)
		billed.DisplayID = ids[job.JobID]
		out[billed.Bucket] = append(out[billed.Bucket], billed)
	}
	return out
}

// Summarize aggregates the figures of each bucket.
func Summarize(partition map[domain.Bucket][]domain.BilledJob) map[domain.Bucket]domain.BucketSummary {
	out := make(map[domain.Bucket]domain.BucketSummary, len(partition))
	for _, b := range domain.AllBuckets() {
		s := domain.BucketSummary{
			Bucket:          b,
			TotalNetPayable: decimal.Zero,
			TotalPaid:       decimal.Zero,
			TotalBalanceDue: decimal.Zero,
		}
		for _, bj := range partition[b] {
			s.Count++
			s.TotalNetPayable = s.TotalNetPayable.Add(bj.Figures.NetPayable)
			s.TotalPaid = s.TotalPaid.Add(bj.Figures.TotalPaid)
			s.TotalBalanceDue = s.TotalBalanceDue.Add(bj.Figures.BalanceDue)
		}
		out[b] = s
	}
	return out
}

func isPastDue(dueDate *time.Time, now time.Time) bool {
	return dueDate != nil && dueDate.Before(now)
}
