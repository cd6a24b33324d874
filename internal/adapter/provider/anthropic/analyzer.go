// Package anthropic implements the entry analyzer on the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxTokens = 1024

// Analyzer completes analysis prompts with a Claude model.
type Analyzer struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewAnalyzer creates an Analyzer. An empty baseURL uses the SDK default.
// The SDK's automatic retries are disabled.
func NewAnalyzer(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *Analyzer {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Analyzer{
		client: anthropic.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Complete sends one system and one user message and returns the text of the reply.
func (a *Analyzer) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		a.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	a.log.DebugContext(ctx, "anthropic completion",
		slog.String("model", a.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return sb.String(), nil
}
