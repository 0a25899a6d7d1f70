// Package llm invokes the chat model with an assembled prompt.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"richbot/internal/config"
	"richbot/internal/models"
)

// Generator produces a model response for a fully assembled prompt.
// Stream feeds fragments through fn as they arrive and returns the full
// text; the concatenation of fragments equals the returned string.
type Generator interface {
	Generate(ctx context.Context, prompt string, p models.Params) (string, error)
	Stream(ctx context.Context, prompt string, p models.Params, fn func(fragment string) error) (string, error)
}

// NVIDIAGenerator calls the configured chat model through the
// OpenAI-compatible NVIDIA endpoint.
type NVIDIAGenerator struct {
	llm   *openai.LLM
	model string
}

func NewNVIDIAGenerator(cfg *config.LLMConfig, apiKey string) (*NVIDIAGenerator, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(apiKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrGeneration, err)
	}
	return &NVIDIAGenerator{llm: client, model: cfg.Model}, nil
}

func (g *NVIDIAGenerator) Generate(ctx context.Context, prompt string, p models.Params) (string, error) {
	p = p.Clamp()
	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(p.Temperature),
		llms.WithTopP(p.TopP),
		llms.WithMaxTokens(p.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrGeneration, err)
	}
	return strings.TrimSpace(out), nil
}

func (g *NVIDIAGenerator) Stream(ctx context.Context, prompt string, p models.Params, fn func(string) error) (string, error) {
	p = p.Clamp()
	log.Debug().Str("model", g.model).Float64("temperature", p.Temperature).Msg("streaming completion")
	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(p.Temperature),
		llms.WithTopP(p.TopP),
		llms.WithMaxTokens(p.MaxTokens),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return fn(string(chunk))
		}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrGeneration, err)
	}
	return strings.TrimSpace(out), nil
}
