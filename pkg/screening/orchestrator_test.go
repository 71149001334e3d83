package screening_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/resume"
	"github.com/artem13815/resume-screening/pkg/screening"
)

func completedJob(t *testing.T, store job.Store, rec resume.Record) job.Job {
	t.Helper()
	rec.Normalize()
	j, err := store.Create(context.Background(), "cv.pdf", "application/pdf", 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.UpdateResult(context.Background(), j.ID, &rec); err != nil {
		t.Fatalf("update result: %v", err)
	}
	return j
}

func candidate(name string, skills ...string) resume.Record {
	return resume.Record{
		Name:            name,
		TechnicalSkills: map[string][]string{"skills": skills},
	}
}

func TestScreenSkipsMissingAndUnfinished(t *testing.T) {
	store := job.NewMemoryStore()
	done := completedJob(t, store, candidate("Jane", "Python"))
	pending, _ := store.Create(context.Background(), "cv2.pdf", "application/pdf", 10)
	missing := uuid.New()

	rep, err := screening.NewOrchestrator(store).Screen(
		context.Background(),
		[]uuid.UUID{missing, done.ID, pending.ID},
		screening.Criteria{RequiredSkills: []string{"Python"}},
		true,
	)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if rep.TotalResumes != 3 {
		t.Errorf("total = %d, want 3", rep.TotalResumes)
	}
	if len(rep.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(rep.Results))
	}
	// Scored entries come first, then skipped in input order.
	if rep.Results[0].JobID != done.ID || rep.Results[0].Skipped {
		t.Errorf("results[0] = %+v, want the scored candidate", rep.Results[0])
	}
	if rep.Results[1].SkipReason != screening.SkipReasonNotFound {
		t.Errorf("results[1] reason = %q", rep.Results[1].SkipReason)
	}
	if rep.Results[2].SkipReason != screening.SkipReasonNotComplete {
		t.Errorf("results[2] reason = %q", rep.Results[2].SkipReason)
	}
}

func TestScreenOrdersByScoreDesc(t *testing.T) {
	store := job.NewMemoryStore()
	weak := completedJob(t, store, candidate("Weak", "Python"))
	strong := completedJob(t, store, candidate("Strong", "Python", "Docker", "Kubernetes"))

	rep, err := screening.NewOrchestrator(store).Screen(
		context.Background(),
		[]uuid.UUID{weak.ID, strong.ID},
		screening.Criteria{RequiredSkills: []string{"Python", "Docker", "Kubernetes"}},
		true,
	)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if rep.Results[0].CandidateName != "Strong" || rep.Results[1].CandidateName != "Weak" {
		t.Errorf("order = [%s, %s], want [Strong, Weak]",
			rep.Results[0].CandidateName, rep.Results[1].CandidateName)
	}
}

func TestScreenTiesKeepInputOrder(t *testing.T) {
	store := job.NewMemoryStore()
	a := completedJob(t, store, candidate("A", "Python"))
	b := completedJob(t, store, candidate("B", "Python"))

	rep, err := screening.NewOrchestrator(store).Screen(
		context.Background(),
		[]uuid.UUID{a.ID, b.ID},
		screening.Criteria{RequiredSkills: []string{"Python"}},
		true,
	)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if rep.Results[0].CandidateName != "A" || rep.Results[1].CandidateName != "B" {
		t.Errorf("tie order = [%s, %s], want input order [A, B]",
			rep.Results[0].CandidateName, rep.Results[1].CandidateName)
	}
}

func TestScreenFiltersUnqualified(t *testing.T) {
	store := job.NewMemoryStore()
	good := completedJob(t, store, candidate("Good", "Python"))
	bad := completedJob(t, store, candidate("Bad", "Excel"))

	rep, err := screening.NewOrchestrator(store).Screen(
		context.Background(),
		[]uuid.UUID{good.ID, bad.ID},
		screening.Criteria{RequiredSkills: []string{"Python"}},
		false,
	)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if len(rep.Results) != 1 || rep.Results[0].CandidateName != "Good" {
		t.Errorf("results = %+v, want only the qualified candidate", rep.Results)
	}
	if rep.QualifiedCount != 1 {
		t.Errorf("qualifiedCount = %d, want 1", rep.QualifiedCount)
	}
	if rep.TotalResumes != 2 {
		t.Errorf("total = %d, want 2", rep.TotalResumes)
	}
}

func TestScreenEmptyBatch(t *testing.T) {
	store := job.NewMemoryStore()
	rep, err := screening.NewOrchestrator(store).Screen(
		context.Background(), nil, screening.Criteria{}, true)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if rep.TotalResumes != 0 || len(rep.Results) != 0 {
		t.Errorf("report = %+v, want empty", rep)
	}
	if rep.ScreeningID == uuid.Nil {
		t.Error("screening id must be assigned")
	}
}
