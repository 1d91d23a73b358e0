// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"growsphere/pkg/logger"
)

const systemPrompt = "You are a friendly home-gardening and small-farm assistant. Answer in concise Markdown " +
	"with practical steps covering climate, soil, watering, fertilizer, pests and harvest timing where relevant."

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
	fallback Client
	log      *slog.Logger
}

// NewOpenAI talks to an OpenAI-compatible chat completions endpoint. Any
// failure other than cancellation is answered by fallback instead.
func NewOpenAI(endpoint, key, model string, fallback Client) Client {
	return &openAI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
		fallback: fallback,
		log:      logger.L().With("component", "assistant"),
	}
}

func (c *openAI) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	answer, err := c.complete(ctx, question)
	if err == nil {
		return answer, nil
	}
	if ctx.Err() != nil || c.fallback == nil {
		return "", err
	}
	c.log.Warn("llm call failed, using canned answers", "error", err)
	return c.fallback.Ask(ctx, question)
}

func (c *openAI) complete(ctx context.Context, question string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": question},
		},
		"temperature": 0.3,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty answer")
	}
	return content, nil
}
