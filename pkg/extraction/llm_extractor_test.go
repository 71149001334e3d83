package extraction_test

import (
	"context"
	"testing"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/extraction"
)

type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Ask(ctx context.Context, system, user string) (string, error) {
	return s.reply, s.err
}

func (s *stubModel) Model() string { return "stub" }

func TestLLMExtractorParsesStrictJSON(t *testing.T) {
	m := &stubModel{reply: `{"name":"Jane Doe","email":"jane@example.com","technical_skills":{"languages":["Go"]}}`}
	ext := extraction.NewLLMExtractor(m)

	rec, err := ext.Extract(context.Background(), "cv.txt", "text/plain", []byte("Jane Doe, Go developer"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if rec.Name != "Jane Doe" || len(rec.TechnicalSkills["languages"]) != 1 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Links == nil || rec.Experience == nil {
		t.Fatal("collections must be normalized to empty, not nil")
	}
}

func TestLLMExtractorSalvagesWrappedJSON(t *testing.T) {
	m := &stubModel{reply: "Here is the result:\n```json\n{\"name\":\"Jane Doe\",\"email\":\"jane@example.com\"}\n```"}
	ext := extraction.NewLLMExtractor(m)

	rec, err := ext.Extract(context.Background(), "cv.txt", "text/plain", []byte("Jane Doe"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if rec.Name != "Jane Doe" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestLLMExtractorRejectsGarbage(t *testing.T) {
	m := &stubModel{reply: "I could not parse this resume, sorry."}
	ext := extraction.NewLLMExtractor(m)

	_, err := ext.Extract(context.Background(), "cv.txt", "text/plain", []byte("some text"))
	if !errs.IsKind(err, errs.KindExtractionRejected) {
		t.Fatalf("err = %v, want %s", err, errs.KindExtractionRejected)
	}
}

func TestLLMExtractorRejectsEmptyRecord(t *testing.T) {
	m := &stubModel{reply: `{"name":"","email":""}`}
	ext := extraction.NewLLMExtractor(m)

	_, err := ext.Extract(context.Background(), "cv.txt", "text/plain", []byte("some text"))
	if !errs.IsKind(err, errs.KindExtractionRejected) {
		t.Fatalf("err = %v, want %s", err, errs.KindExtractionRejected)
	}
}

func TestLLMExtractorRejectsEmptyInput(t *testing.T) {
	m := &stubModel{reply: `{"name":"x"}`}
	ext := extraction.NewLLMExtractor(m)

	_, err := ext.Extract(context.Background(), "cv.txt", "text/plain", []byte("   \n  "))
	if !errs.IsKind(err, errs.KindExtractionRejected) {
		t.Fatalf("err = %v, want %s", err, errs.KindExtractionRejected)
	}
}
