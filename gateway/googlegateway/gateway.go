/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googlegateway implements the gateway contract on Google's
// Generative AI SDK.
package googlegateway

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/prdeck/gateway/retry"
	"chainguard.dev/prdeck/metrics"
	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"
)

// Gateway sends single-turn requests to a Gemini model.
type Gateway struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	genaiMetrics    *metrics.GenAI
	retryConfig     retry.Config
}

// New creates a Gemini gateway with the given configuration.
func New(client *genai.Client, options ...Option) (*Gateway, error) {
	if client == nil {
		return nil, errors.New("client is required")
	}

	g := &Gateway{
		client:          client,
		model:           "gemini-2.0-flash",
		temperature:     0.2, // low temperature for consistent structured output
		maxOutputTokens: 8192,
		genaiMetrics:    metrics.NewGenAI("prdeck.ai"),
		retryConfig:     retry.DefaultConfig(),
	}

	for _, opt := range options {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return g, nil
}

// Respond implements the gateway contract: one user instruction, an optional
// system instruction, one text response. Transient provider errors are
// retried with backoff; everything else surfaces to the caller as-is.
func (g *Gateway) Respond(ctx context.Context, user, system string) (string, error) {
	log := clog.FromContext(ctx)

	config := &genai.GenerateContentConfig{
		Temperature:     ptr(g.temperature),
		MaxOutputTokens: g.maxOutputTokens,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: user}},
	}}

	log.With("model", g.model).With("prompt_length", len(user)).Info("Sending request to Gemini")

	response, err := retry.Do(ctx, g.retryConfig, "generate_content", isRetryableGeminiError, func() (*genai.GenerateContentResponse, error) {
		return g.client.Models.GenerateContent(ctx, g.model, contents, config)
	})
	if err != nil {
		return "", fmt.Errorf("generating content with model %q: %w", g.model, err)
	}

	if response.UsageMetadata != nil {
		g.genaiMetrics.RecordTokens(ctx, g.model,
			int64(response.UsageMetadata.PromptTokenCount),
			int64(response.UsageMetadata.CandidatesTokenCount))
	}

	if len(response.Candidates) == 0 {
		return "", errors.New("no content generated - no candidates")
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content generated - empty candidate")
	}

	var text string
	for i, part := range candidate.Content.Parts {
		switch {
		case part.Thought:
			// Skip reasoning parts; only the answer text matters here.
		case part.Text != "":
			text = part.Text
			log.With("part_index", i).With("text_length", len(part.Text)).Info("Found text part")
		}
	}

	if text == "" {
		return "", errors.New("no text content found in response")
	}
	return text, nil
}

// ptr is a helper function to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
