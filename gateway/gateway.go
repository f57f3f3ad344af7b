/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package gateway defines the boundary abstraction over a language-model call
// and constructs provider-specific implementations by model name.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/prdeck/gateway/claudegateway"
	"chainguard.dev/prdeck/gateway/googlegateway"
	"github.com/anthropics/anthropic-sdk-go"
	"google.golang.org/genai"
)

// Interface is the boundary over a language-model call. Implementations own
// any transport-level retry and backoff; callers treat every failure the same
// way, as "no usable text for this request".
type Interface interface {
	// Respond sends the user instruction, with an optional system instruction
	// (empty string means absent), and returns the model's free-form text.
	Respond(ctx context.Context, user, system string) (string, error)
}

// Settings tunes the underlying provider call. Zero values keep the
// provider defaults (temperature 0.2, 8192 output tokens).
type Settings struct {
	Temperature float64
	MaxTokens   int64
}

// New constructs a gateway for the given model. The model name determines the
// provider:
//   - gemini-* models use Google's Generative AI SDK (GEMINI_API_KEY)
//   - claude-* models use Anthropic's SDK (ANTHROPIC_API_KEY)
func New(ctx context.Context, model string, settings Settings) (Interface, error) {
	modelLower := strings.ToLower(model)

	switch {
	case strings.HasPrefix(modelLower, "gemini-"):
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating Google AI client: %w", err)
		}
		opts := []googlegateway.Option{googlegateway.WithModel(model)}
		if settings.Temperature != 0 {
			opts = append(opts, googlegateway.WithTemperature(float32(settings.Temperature)))
		}
		if settings.MaxTokens != 0 {
			opts = append(opts, googlegateway.WithMaxOutputTokens(int32(settings.MaxTokens)))
		}
		return googlegateway.New(client, opts...)
	case strings.HasPrefix(modelLower, "claude-"):
		opts := []claudegateway.Option{claudegateway.WithModel(model)}
		if settings.Temperature != 0 {
			opts = append(opts, claudegateway.WithTemperature(settings.Temperature))
		}
		if settings.MaxTokens != 0 {
			opts = append(opts, claudegateway.WithMaxTokens(settings.MaxTokens))
		}
		return claudegateway.New(anthropic.NewClient(), opts...)
	default:
		return nil, fmt.Errorf("unsupported model: %s (expected gemini-* or claude-*)", model)
	}
}
