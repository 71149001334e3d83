package templates_test

import (
	"strings"
	"testing"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/resume"
	"github.com/artem13815/resume-screening/pkg/templates"
)

func sample() resume.Record {
	return resume.Record{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		TechnicalSkills: map[string][]string{
			"languages": {"Go", "Python"},
		},
		Experience: []resume.Experience{
			{Company: "Acme", Title: "Engineer", Description: "Built things", StartDate: "2020", EndDate: ""},
		},
	}
}

func TestRenderClassic(t *testing.T) {
	html, err := templates.Render(sample(), "1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Jane Doe", "jane@example.com", "Acme", "present", "Go, Python"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestRenderModern(t *testing.T) {
	html, err := templates.Render(sample(), "3")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Jane Doe", "Acme", "present"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestListCoversEveryTemplate(t *testing.T) {
	infos := templates.List()
	if len(infos) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(infos))
	}
	for _, info := range infos {
		if info.Name == "" || info.Description == "" {
			t.Errorf("template %s has empty metadata", info.ID)
		}
		if _, err := templates.Render(sample(), info.ID); err != nil {
			t.Errorf("listed template %s does not render: %v", info.ID, err)
		}
	}
}

func TestRenderDefaultsToClassic(t *testing.T) {
	a, _ := templates.Render(sample(), "")
	b, _ := templates.Render(sample(), "1")
	if a != b {
		t.Error("empty template id must render the classic template")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := templates.Render(sample(), "42")
	if !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	rec := sample()
	rec.Name = `<script>alert("x")</script>`
	html, err := templates.Render(rec, "1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("candidate data must be escaped")
	}
}
