package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"FadaMonitor/internal/config"
	"FadaMonitor/internal/ports"
)

// AnthropicSummarizer produces report digests through the Anthropic
// Messages API. Input is truncated to a bounded prefix before sending.
type AnthropicSummarizer struct {
	client        *anthropic.Client
	model         anthropic.Model
	maxTokens     int
	maxInputBytes int
}

var _ ports.Summarizer = (*AnthropicSummarizer)(nil)

// NewAnthropicSummarizer builds a summarizer from configuration. The caller
// must ensure an API key is present; absence is a wiring decision, not a
// runtime error here.
func NewAnthropicSummarizer(cfg config.SummaryConfig) *AnthropicSummarizer {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &AnthropicSummarizer{
		client:        &client,
		model:         anthropic.Model(cfg.Model),
		maxTokens:     cfg.MaxTokens,
		maxInputBytes: cfg.MaxInputBytes,
	}
}

// Summarize asks the model for a concise digest of one report.
func (s *AnthropicSummarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	prompt := buildPrompt(title, truncate(text, s.maxInputBytes))

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: int64(s.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("anthropic api: empty response")
	}
	return resp.Content[0].Text, nil
}

func buildPrompt(title, text string) string {
	return fmt.Sprintf(`Analyze this FADA vehicle retail data report and provide a concise summary.

Report Title: %s

Report Content:
%s

Please provide:
1. Key highlights and main findings
2. Notable trends (growth/decline by category)
3. Important statistics
4. Any significant market insights

Keep the summary clear and actionable.`, title, text)
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}
