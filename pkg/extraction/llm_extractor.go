package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/llm"
	"github.com/artem13815/resume-screening/pkg/resume"
)

const extractSystemPrompt = "You are a resume parsing assistant. Return the result STRICTLY as one JSON object (no markdown, no code fences, no commentary). Always return empty arrays as [] and empty objects as {}, never null. Do not invent facts that are not in the text."

const extractSchemaPrompt = `Resume text:
<<<
%s
>>>

Return STRICTLY one JSON object with this schema:
{
  "name": string,
  "email": string,
  "links": string[],
  "experience": [{"company":string,"title":string,"description":string,"start_date":string,"end_date":string}],
  "education": [{"institution":string,"degree":string,"start_date":string,"end_date":string}],
  "technical_skills": {"<category>": string[]},
  "key_accomplishments": string
}

Rules:
- No extra fields
- No markdown
- Dates as they appear in the text ("2021", "Jan 2021", "present")
- If a list is empty, output []
`

// LLMExtractor извлекает структурированное резюме через чат-модель.
type LLMExtractor struct {
	model    llm.ChatModel
	maxChars int
}

func NewLLMExtractor(model llm.ChatModel) *LLMExtractor {
	return &LLMExtractor{
		model:    model,
		maxChars: 12000,
	}
}

func (e *LLMExtractor) Extract(ctx context.Context, filename, mimeType string, data []byte) (resume.Record, error) {
	var rec resume.Record
	if e.model == nil {
		return rec, errs.New(errs.KindExtractionRejected, "extraction model is not configured")
	}

	text, err := ParseText(filename, mimeType, data)
	if err != nil {
		return rec, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return rec, errs.New(errs.KindExtractionRejected, "resume text is empty")
	}
	if len(text) > e.maxChars {
		text = text[:e.maxChars]
	}

	raw, err := e.model.Ask(ctx, extractSystemPrompt, fmt.Sprintf(extractSchemaPrompt, text))
	if err != nil {
		return rec, err
	}
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// попытка извлечь JSON из текста
		salvaged := false
		if i := strings.Index(raw, "{"); i >= 0 {
			if j := strings.LastIndex(raw, "}"); j > i {
				if err := json.Unmarshal([]byte(raw[i:j+1]), &rec); err == nil {
					salvaged = true
				}
			}
		}
		if !salvaged {
			return resume.Record{}, errs.New(errs.KindExtractionRejected, "model returned malformed json")
		}
	}

	rec.Normalize()
	if rec.Empty() {
		return resume.Record{}, errs.New(errs.KindExtractionRejected, "model returned an empty record")
	}
	return rec, nil
}
