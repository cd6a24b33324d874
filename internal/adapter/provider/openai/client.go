// Package openai implements speech-to-text, chat completion and image
// generation on the OpenAI API.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/heartmarshall/voicejournal-backend/internal/config"
)

const (
	completionTemperature = 0.7
	maxImageBytes         = 32 << 20
)

// Client calls the hosted OpenAI endpoints. Calls are never retried.
type Client struct {
	api                openai.Client
	transcriptionModel string
	transcriptionLang  string
	analysisModel      string
	imageModel         string
	httpClient         *http.Client
	log                *slog.Logger
}

// NewClient creates a Client from the AI configuration. An empty base URL
// uses the SDK default.
func NewClient(cfg config.AIConfig, logger *slog.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(httpClient),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if base := strings.TrimRight(cfg.OpenAIBaseURL, "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base+"/"))
	}

	return &Client{
		api:                openai.NewClient(opts...),
		transcriptionModel: cfg.TranscriptionModel,
		transcriptionLang:  cfg.TranscriptionLang,
		analysisModel:      cfg.AnalysisModel,
		imageModel:         cfg.ImageModel,
		httpClient:         httpClient,
		log:                logger.With("adapter", "openai"),
	}
}

// ---------------------------------------------------------------------------
// Transcription
// ---------------------------------------------------------------------------

// Transcribe converts recorded speech into text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		File:           openai.File(bytes.NewReader(audio), filename, "application/octet-stream"),
		Model:          openai.AudioModel(c.transcriptionModel),
		ResponseFormat: openai.AudioResponseFormatJSON,
	}
	if c.transcriptionLang != "" {
		params.Language = openai.String(c.transcriptionLang)
	}

	start := time.Now()
	out, err := c.api.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "openai transcription failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("openai: transcribe: %w", err)
	}

	c.log.DebugContext(ctx, "openai transcription",
		slog.String("model", c.transcriptionModel),
		slog.Int("audio_bytes", len(audio)),
		slog.Duration("duration", time.Since(start)),
	)

	return strings.TrimSpace(out.Text), nil
}

// ---------------------------------------------------------------------------
// Chat completion
// ---------------------------------------------------------------------------

// Complete runs one chat completion in JSON mode and returns the raw text
// of the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.analysisModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(completionTemperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "openai completion failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}

	c.log.DebugContext(ctx, "openai completion",
		slog.String("model", c.analysisModel),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return resp.Choices[0].Message.Content, nil
}

// ---------------------------------------------------------------------------
// Image generation
// ---------------------------------------------------------------------------

// GenerateImage renders one 1024x1024 image for prompt and returns its bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  prompt,
		Model:   openai.ImageModel(c.imageModel),
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "openai image generation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai: generate image: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai: no image returned")
	}

	img := resp.Data[0]
	if img.B64JSON != "" {
		data, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("openai: decode image: %w", err)
		}
		return data, nil
	}
	if img.URL == "" {
		return nil, fmt.Errorf("openai: image has no url")
	}

	return c.download(ctx, img.URL)
}

// download fetches a generated image. The temporary URL is pre-signed, so no
// credentials are sent.
func (c *Client) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openai: create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai: download image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("openai: read image: %w", err)
	}

	return data, nil
}
