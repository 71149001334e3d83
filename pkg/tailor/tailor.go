package tailor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/resume-screening/pkg/llm"
	"github.com/artem13815/resume-screening/pkg/resume"
)

const tailorSystemPrompt = "You are a resume tailoring assistant. Rewrite descriptions and accomplishments so they emphasize what matters for the target job. Never invent skills, employers or dates that are not in the source resume. Return STRICTLY one JSON object with the same schema as the input, no markdown, no commentary."

// Service подгоняет извлечённое резюме под описание вакансии.
// При недоступности модели отдаёт исходное резюме без изменений.
type Service struct {
	model llm.ChatModel
	log   *zap.Logger
}

func NewService(model llm.ChatModel, log *zap.Logger) *Service {
	return &Service{model: model, log: log}
}

// Tailor returns the adapted record and whether tailoring was applied.
func (s *Service) Tailor(ctx context.Context, rec resume.Record, jobDescription string) (resume.Record, bool) {
	jobDescription = strings.TrimSpace(jobDescription)
	if s.model == nil || jobDescription == "" {
		return rec, false
	}

	src, err := json.Marshal(rec)
	if err != nil {
		return rec, false
	}
	user := fmt.Sprintf("Target job description:\n<<<\n%s\n>>>\n\nSource resume JSON:\n%s\n", jobDescription, src)

	raw, err := s.model.Ask(ctx, tailorSystemPrompt, user)
	if err != nil {
		s.log.Warn("tailoring degraded to the original record", zap.Error(err))
		return rec, false
	}
	raw = strings.TrimSpace(raw)

	var out resume.Record
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		if i := strings.Index(raw, "{"); i >= 0 {
			if j := strings.LastIndex(raw, "}"); j > i {
				err = json.Unmarshal([]byte(raw[i:j+1]), &out)
			}
		}
		if err != nil {
			s.log.Warn("tailoring returned malformed json, using the original record")
			return rec, false
		}
	}
	out.Normalize()
	if out.Empty() {
		return rec, false
	}
	// Identity fields are never tailored.
	out.Name = rec.Name
	out.Email = rec.Email
	out.Links = rec.Links
	return out, true
}
