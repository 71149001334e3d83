package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/artem13815/resume-screening/pkg/errs"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
//
// Ошибки классифицируются по типам из pkg/errs: таймаут дедлайна — не
// повторяется, 4xx — отказ провайдера (не повторяется), 429/5xx и сетевые
// сбои — транспортные (повторяются шлюзом).
type Client struct {
	APIKey   string
	BaseURL  string
	ModelID  string
	AppTitle string
	Referer  string
	httpDo   *http.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "qwen/qwen2.5-32b-instruct"
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		ModelID:  model,
		AppTitle: appTitle,
		Referer:  referer,
		httpDo: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

func (c *Client) Model() string { return c.ModelID }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	// Keep defaults conservative; callers can change by editing fields if needed.
	Temperature float32 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Ask sends the prompts to the model and returns its reply.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.APIKey == "" {
		return "", errs.New(errs.KindExtractionRejected, "openrouter api key is empty")
	}
	reqBody := chatCompletionsRequest{
		Model: c.ModelID,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errs.Wrap(errs.KindExtractionTimeout, "model call exceeded the deadline", err)
		}
		return "", errs.Wrap(errs.KindTransport, "model call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		detail := fmt.Sprintf("openrouter http %d: %v", resp.StatusCode, errMap)
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return "", errs.New(errs.KindTransport, detail)
		case resp.StatusCode == http.StatusRequestTimeout:
			return "", errs.New(errs.KindExtractionTimeout, detail)
		default:
			return "", errs.New(errs.KindExtractionRejected, detail)
		}
	}

	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(errs.KindTransport, "malformed model response", err)
	}
	if len(out.Choices) == 0 {
		return "", errs.New(errs.KindExtractionRejected, "no choices returned by model")
	}
	return out.Choices[0].Message.Content, nil
}
