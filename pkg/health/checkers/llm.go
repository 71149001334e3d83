package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/resume-screening/pkg/llm"
)

// LLMChecker reports whether an extraction model is configured. It does not
// call the provider: readiness must not spend tokens.
type LLMChecker struct {
	model llm.ChatModel
}

func NewLLMChecker(model llm.ChatModel) *LLMChecker {
	return &LLMChecker{model: model}
}

func (c *LLMChecker) Name() string { return "llm" }

func (c *LLMChecker) Check(ctx context.Context) error {
	if c.model == nil {
		return errors.New("extraction model is not configured")
	}
	return nil
}
