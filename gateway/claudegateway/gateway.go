/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudegateway implements the gateway contract on Anthropic's SDK.
package claudegateway

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/prdeck/gateway/retry"
	"chainguard.dev/prdeck/metrics"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// Gateway sends single-turn requests to a Claude model.
type Gateway struct {
	client       anthropic.Client
	model        string
	temperature  float64
	maxTokens    int64
	genaiMetrics *metrics.GenAI
	retryConfig  retry.Config
}

// New creates a Claude gateway with the given configuration.
func New(client anthropic.Client, options ...Option) (*Gateway, error) {
	g := &Gateway{
		client:       client,
		model:        "claude-sonnet-4@20250514",
		temperature:  0.2, // low temperature for consistent structured output
		maxTokens:    8192,
		genaiMetrics: metrics.NewGenAI("prdeck.ai"),
		retryConfig:  retry.DefaultConfig(),
	}

	for _, opt := range options {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return g, nil
}

// Respond implements the gateway contract: one user instruction, an optional
// system instruction, one text response.
func (g *Gateway) Respond(ctx context.Context, user, system string) (string, error) {
	log := clog.FromContext(ctx)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(g.temperature),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(user),
			},
		}},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	log.With("model", g.model).With("prompt_length", len(user)).Info("Sending request to Claude")

	message, err := retry.Do(ctx, g.retryConfig, "new_message", isRetryableClaudeError, func() (*anthropic.Message, error) {
		return g.client.Messages.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("creating message with model %q: %w", g.model, err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		g.genaiMetrics.RecordTokens(ctx, g.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
		}
	}

	if text == "" {
		return "", errors.New("no text content in Claude's response")
	}
	return text, nil
}
