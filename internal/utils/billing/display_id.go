package billing

import (
	"fmt"
	"sort"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
)

// DisplayIDPrefix starts every sequential display ID.
const DisplayIDPrefix = "Z"

// FormatDisplayID renders the 1-based position as Z01, Z02 ... Z99, Z100.
func FormatDisplayID(position int) string {
	return fmt.Sprintf("%s%02d", DisplayIDPrefix, position)
}

// AssignSequentialIDs numbers the jobs oldest first.
//
// IDs are positional: they are only stable when recomputed over the same snapshot.
// A job missing from one query's snapshot does not consume a slot, so the same job
// can receive different IDs under different status filters.
func AssignSequentialIDs(jobs []domain.Job) map[string]string {
	ids := make(map[string]string, len(jobs))
	for i, job := range sortByCreatedAt(jobs) {
		ids[job.JobID] = FormatDisplayID(i + 1)
	}
	return ids
}

// sortByCreatedAt returns a copy ordered by creation time, ties broken by ID.
func sortByCreatedAt(jobs []domain.Job) []domain.Job {
	sorted := make([]domain.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].JobID < sorted[j].JobID
	})
	return sorted
}
