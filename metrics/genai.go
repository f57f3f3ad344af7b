/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry counters for the generation pipeline:
// token usage per model on the gateway side, and self-correction outcomes on
// the validation side. Metric creation degrades gracefully to no-op counters
// so an unconfigured meter provider never breaks generation.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI records token usage for language-model calls.
type GenAI struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
}

// NewGenAI creates token counters under the given meter name. The meter name
// should be shared across gateways ("prdeck.ai") with the model name recorded
// as a dimension.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	return &GenAI{
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
	}
}

// RecordTokens records prompt and completion token usage for a model call.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}

// Outcome labels how a self-correction run ended.
type Outcome string

const (
	// OutcomeFirstPass means the initial response validated cleanly.
	OutcomeFirstPass Outcome = "first_pass"
	// OutcomeRepaired means the single repair round-trip produced a valid document.
	OutcomeRepaired Outcome = "repaired"
	// OutcomeExhausted means both attempts failed validation.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeNoResponse means the gateway returned no usable text.
	OutcomeNoResponse Outcome = "no_response"
)

// Corrections records self-correction outcomes per pipeline.
type Corrections struct {
	outcomes metric.Int64Counter
}

// NewCorrections creates the correction-outcome counter under the given meter name.
func NewCorrections(meterName string) *Corrections {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	outcomes, err := meter.Int64Counter("selfcorrect.outcomes",
		metric.WithDescription("Self-correction run outcomes by pipeline"),
		metric.WithUnit("{runs}"))
	if err != nil {
		slog.Warn("Failed to create correction outcome counter, metrics will be disabled", "error", err, "meter", meterName)
		outcomes = noop.Int64Counter{}
	}

	return &Corrections{outcomes: outcomes}
}

// Record counts one run of the named pipeline with the given outcome.
func (c *Corrections) Record(ctx context.Context, pipeline string, outcome Outcome) {
	c.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("outcome", string(outcome)),
	))
}
