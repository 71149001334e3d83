package job_test

import (
	"testing"

	"github.com/artem13815/resume-screening/pkg/job"
)

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED"}
	for _, s := range valid {
		got, err := job.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	for _, s := range []string{"", "pending", "DONE", "SUCCESS"} {
		if _, err := job.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

func TestCanTransition_Valid(t *testing.T) {
	cases := []struct {
		from, to job.Status
	}{
		{job.StatusPending, job.StatusProcessing},
		{job.StatusPending, job.StatusCompleted},
		{job.StatusPending, job.StatusFailed},
		{job.StatusProcessing, job.StatusCompleted},
		{job.StatusProcessing, job.StatusFailed},
	}
	for _, c := range cases {
		if !job.CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", c.from, c.to)
		}
	}
}

func TestCanTransition_TerminalStatesHaveNoExit(t *testing.T) {
	all := []job.Status{job.StatusPending, job.StatusProcessing, job.StatusCompleted, job.StatusFailed}
	for _, from := range []job.Status{job.StatusCompleted, job.StatusFailed} {
		for _, to := range all {
			if job.CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = true, want false", from, to)
			}
		}
	}
}

func TestCanTransition_NoBackwardMoves(t *testing.T) {
	if job.CanTransition(job.StatusProcessing, job.StatusPending) {
		t.Error("PROCESSING → PENDING must not be allowed")
	}
	if job.CanTransition(job.StatusPending, job.StatusPending) {
		t.Error("PENDING → PENDING must not be allowed")
	}
}

func TestIsTerminal(t *testing.T) {
	if job.IsTerminal(job.StatusPending) || job.IsTerminal(job.StatusProcessing) {
		t.Error("PENDING/PROCESSING must not be terminal")
	}
	if !job.IsTerminal(job.StatusCompleted) || !job.IsTerminal(job.StatusFailed) {
		t.Error("COMPLETED/FAILED must be terminal")
	}
}
