/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudegateway

import (
	"fmt"
	"strings"

	"chainguard.dev/prdeck/gateway/retry"
)

// Option is a functional option for configuring a Gateway.
type Option func(*Gateway) error

// WithModel sets the Claude model used for generation.
func WithModel(model string) Option {
	return func(g *Gateway) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		g.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature. Claude accepts 0.0 to 1.0.
func WithTemperature(temperature float64) Option {
	return func(g *Gateway) error {
		if temperature < 0.0 || temperature > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temperature)
		}
		g.temperature = temperature
		return nil
	}
}

// WithMaxTokens sets the maximum output tokens for generation.
func WithMaxTokens(tokens int64) Option {
	return func(g *Gateway) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		g.maxTokens = tokens
		return nil
	}
}

// WithRetryConfig sets the retry configuration for transient Claude API errors.
func WithRetryConfig(cfg retry.Config) Option {
	return func(g *Gateway) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		g.retryConfig = cfg
		return nil
	}
}
