package screening

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/pkg/job"
)

const (
	SkipReasonNotFound    = "job not found"
	SkipReasonNotComplete = "extraction not complete"
)

// Orchestrator прогоняет пачку задач через движок оценки.
// Скрининг только читает хранилище и ничего в нём не меняет.
type Orchestrator struct {
	store job.Store
	now   func() time.Time
}

func NewOrchestrator(store job.Store) *Orchestrator {
	return &Orchestrator{store: store, now: time.Now}
}

// Screen scores every referenced job. A missing or unfinished job becomes a
// skipped entry instead of aborting the batch. Scored entries are
// stable-sorted by score descending (ties keep input order); skipped
// entries follow in input order.
func (o *Orchestrator) Screen(ctx context.Context, jobIDs []uuid.UUID, c Criteria, includeUnqualified bool) (Report, error) {
	c.Normalize()
	now := o.now().UTC()

	var scored, skipped []Result
	qualified := 0
	for _, id := range jobIDs {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		j, err := o.store.Get(ctx, id)
		switch {
		case errors.Is(err, job.ErrNotFound):
			skipped = append(skipped, Result{JobID: id, Skipped: true, SkipReason: SkipReasonNotFound})
			continue
		case err != nil:
			return Report{}, err
		case j.Status != job.StatusCompleted || j.Result == nil:
			skipped = append(skipped, Result{JobID: id, Skipped: true, SkipReason: SkipReasonNotComplete})
			continue
		}

		res := Score(*j.Result, c, now)
		res.JobID = id
		if res.Qualified {
			qualified++
		}
		if res.Qualified || includeUnqualified {
			scored = append(scored, res)
		}
	}

	sort.SliceStable(scored, func(i, k int) bool { return scored[i].Score > scored[k].Score })

	results := make([]Result, 0, len(scored)+len(skipped))
	results = append(results, scored...)
	results = append(results, skipped...)

	return Report{
		ScreeningID:    uuid.New(),
		TotalResumes:   len(jobIDs),
		QualifiedCount: qualified,
		Results:        results,
		Criteria:       c,
		CompletedAt:    now,
	}, nil
}
