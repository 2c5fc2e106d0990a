package billing_test

import (
	"testing"
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/utils/billing"
	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayID(t *testing.T) {
	assert.Equal(t, "Z01", billing.FormatDisplayID(1))
	assert.Equal(t, "Z09", billing.FormatDisplayID(9))
	assert.Equal(t, "Z99", billing.FormatDisplayID(99))
	assert.Equal(t, "Z100", billing.FormatDisplayID(100))
	assert.Equal(t, "Z1234", billing.FormatDisplayID(1234))
}

func TestAssignSequentialIDs(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{JobID: "c", AuditFields: domain.AuditFields{CreatedAt: base.Add(2 * time.Hour)}},
		{JobID: "a", AuditFields: domain.AuditFields{CreatedAt: base}},
		{JobID: "b", AuditFields: domain.AuditFields{CreatedAt: base.Add(time.Hour)}},
	}

	ids := billing.AssignSequentialIDs(jobs)

	assert.Equal(t, map[string]string{"a": "Z01", "b": "Z02", "c": "Z03"}, ids)
	assert.Equal(t, "c", jobs[0].JobID, "input order must not change")
}

func TestAssignSequentialIDs_TiesBrokenByID(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{JobID: "y", AuditFields: domain.AuditFields{CreatedAt: at}},
		{JobID: "x", AuditFields: domain.AuditFields{CreatedAt: at}},
	}
	ids := billing.AssignSequentialIDs(jobs)
	assert.Equal(t, "Z01", ids["x"])
	assert.Equal(t, "Z02", ids["y"])
}

func TestAssignSequentialIDs_DependsOnSnapshot(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	all := []domain.Job{
		{JobID: "a", Status: "delivered", AuditFields: domain.AuditFields{CreatedAt: base}},
		{JobID: "b", Status: "pending", AuditFields: domain.AuditFields{CreatedAt: base.Add(time.Hour)}},
	}
	pendingOnly := all[1:]

	assert.Equal(t, "Z02", billing.AssignSequentialIDs(all)["b"])
	assert.Equal(t, "Z01", billing.AssignSequentialIDs(pendingOnly)["b"])
}

func TestAssignSequentialIDs_Large(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jobs := make([]domain.Job, 120)
	for i := range jobs {
		jobs[i] = domain.Job{JobID: billing.FormatDisplayID(1000 + i), AuditFields: domain.AuditFields{CreatedAt: base.Add(time.Duration(i) * time.Second)}}
	}
	ids := billing.AssignSequentialIDs(jobs)
	assert.Equal(t, "Z99", ids[jobs[98].JobID])
	assert.Equal(t, "Z100", ids[jobs[99].JobID])
	assert.Equal(t, "Z120", ids[jobs[119].JobID])
}
