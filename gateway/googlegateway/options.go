/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlegateway

import (
	"fmt"
	"strings"

	"chainguard.dev/prdeck/gateway/retry"
)

// Option is a functional option for configuring a Gateway.
type Option func(*Gateway) error

// WithModel sets the Gemini model used for generation.
func WithModel(model string) Option {
	return func(g *Gateway) error {
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		g.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature. Gemini accepts 0.0 to 2.0.
func WithTemperature(temperature float32) Option {
	return func(g *Gateway) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		g.temperature = temperature
		return nil
	}
}

// WithMaxOutputTokens sets the maximum output tokens for generation.
func WithMaxOutputTokens(tokens int32) Option {
	return func(g *Gateway) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		g.maxOutputTokens = tokens
		return nil
	}
}

// WithRetryConfig sets the retry configuration for transient provider errors,
// particularly 429 RESOURCE_EXHAUSTED quota responses.
func WithRetryConfig(cfg retry.Config) Option {
	return func(g *Gateway) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		g.retryConfig = cfg
		return nil
	}
}
