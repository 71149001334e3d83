package tailor_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/artem13815/resume-screening/pkg/resume"
	"github.com/artem13815/resume-screening/pkg/tailor"
)

type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Ask(ctx context.Context, system, user string) (string, error) {
	return s.reply, s.err
}

func (s *stubModel) Model() string { return "stub" }

func srcRecord() resume.Record {
	rec := resume.Record{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		KeyAccomplishments: "Shipped the billing system",
	}
	rec.Normalize()
	return rec
}

func TestTailorRewritesRecord(t *testing.T) {
	m := &stubModel{reply: `{"name":"HACKED","email":"other@example.com","key_accomplishments":"Shipped the billing system serving 2M users"}`}
	svc := tailor.NewService(m, zap.NewNop())

	got, applied := svc.Tailor(context.Background(), srcRecord(), "Senior billing engineer")
	if !applied {
		t.Fatal("expected tailoring to apply")
	}
	if got.KeyAccomplishments != "Shipped the billing system serving 2M users" {
		t.Errorf("accomplishments = %q", got.KeyAccomplishments)
	}
	// Identity must survive whatever the model returns.
	if got.Name != "Jane Doe" || got.Email != "jane@example.com" {
		t.Errorf("identity rewritten: %q %q", got.Name, got.Email)
	}
}

func TestTailorDegradesOnModelError(t *testing.T) {
	m := &stubModel{err: errors.New("boom")}
	svc := tailor.NewService(m, zap.NewNop())

	got, applied := svc.Tailor(context.Background(), srcRecord(), "any job")
	if applied {
		t.Fatal("must not report tailoring on failure")
	}
	if got.KeyAccomplishments != "Shipped the billing system" {
		t.Errorf("record changed on failure: %+v", got)
	}
}

func TestTailorDegradesOnGarbage(t *testing.T) {
	m := &stubModel{reply: "I cannot do that"}
	svc := tailor.NewService(m, zap.NewNop())

	if _, applied := svc.Tailor(context.Background(), srcRecord(), "any job"); applied {
		t.Fatal("garbage output must degrade to the original")
	}
}

func TestTailorSkipsWithoutModelOrDescription(t *testing.T) {
	svc := tailor.NewService(nil, zap.NewNop())
	if _, applied := svc.Tailor(context.Background(), srcRecord(), "job"); applied {
		t.Fatal("nil model must degrade")
	}

	m := &stubModel{reply: `{}`}
	svc = tailor.NewService(m, zap.NewNop())
	if _, applied := svc.Tailor(context.Background(), srcRecord(), "   "); applied {
		t.Fatal("blank description must degrade")
	}
}
