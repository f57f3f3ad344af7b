/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package selfcorrect turns untrusted model text into a validated document,
// recovering from validation failures with exactly one repair round-trip.
//
// The flow for one run:
//
//	Initial  -> gateway call -> extract -> validate -> Done
//	                                   \-> failure -> Correcting
//	Correcting -> repair gateway call -> extract -> validate -> Done
//	                                             \-> failure -> terminal
//
// The single repair attempt is a deliberate bound, not a retry-until-success
// policy. Failures recovered here are semantic (the model produced the wrong
// shape); transient transport faults are the gateway's concern. Each run is an
// isolated state machine: no state is shared across documents, so independent
// runs may proceed concurrently.
package selfcorrect

import (
	"context"
	"fmt"

	"chainguard.dev/prdeck/gateway"
	"chainguard.dev/prdeck/metrics"
	"chainguard.dev/prdeck/result"
	"chainguard.dev/prdeck/validate"
	"github.com/chainguard-dev/clog"
)

// Strategy parameterizes one raw-text-to-validated-document conversion.
// Both document pipelines (slide plans and context blueprints) share Run and
// plug in their prompts and validator here.
type Strategy[T any] struct {
	// Pipeline names the conversion in logs and metrics (e.g. "slide_plan").
	Pipeline string

	// Initial builds the instruction pair for the first model call.
	Initial func() (user, system string, err error)

	// Repair builds the instruction pair for the single repair call. It
	// receives the verbatim broken text from the first attempt and the
	// validation error it produced; implementations embed both, plus the
	// target schema, in the repair prompt.
	Repair func(broken string, verr *validate.Error) (user, system string, err error)

	// Validate parses the extracted candidate JSON into the document,
	// distinguishing syntax failures from shape violations.
	Validate func(candidate string) (T, *validate.Error)
}

var corrections = metrics.NewCorrections("prdeck.pipeline")

// Run drives one conversion: model call, extraction, validation, and on
// failure a single repair round-trip. On success it returns the validated
// document. The only failures that escape are *GatewayError (no usable text
// from the model on either attempt) and *ExhaustedError (both attempts failed
// validation); callers should treat either as "no document produced" and not
// retry automatically.
func Run[T any](ctx context.Context, gw gateway.Interface, s Strategy[T]) (T, error) {
	var zero T
	log := clog.FromContext(ctx).With("pipeline", s.Pipeline)

	user, system, err := s.Initial()
	if err != nil {
		return zero, fmt.Errorf("building initial prompt: %w", err)
	}

	text, err := gw.Respond(ctx, user, system)
	if err != nil || text == "" {
		corrections.Record(ctx, s.Pipeline, metrics.OutcomeNoResponse)
		return zero, &GatewayError{Attempt: AttemptInitial, Err: err}
	}

	doc, verr := s.Validate(result.ExtractObject(text))
	if verr == nil {
		corrections.Record(ctx, s.Pipeline, metrics.OutcomeFirstPass)
		return doc, nil
	}

	log.With("kind", verr.Kind).With("error", verr.Error()).
		Warn("Initial validation failed, attempting self-correction")

	repairUser, repairSystem, err := s.Repair(text, verr)
	if err != nil {
		return zero, fmt.Errorf("building repair prompt: %w", err)
	}

	repaired, err := gw.Respond(ctx, repairUser, repairSystem)
	if err != nil || repaired == "" {
		corrections.Record(ctx, s.Pipeline, metrics.OutcomeNoResponse)
		return zero, &GatewayError{Attempt: AttemptRepair, Err: err}
	}

	doc, repairVerr := s.Validate(result.ExtractObject(repaired))
	if repairVerr == nil {
		corrections.Record(ctx, s.Pipeline, metrics.OutcomeRepaired)
		log.Info("Self-correction produced a valid document")
		return doc, nil
	}

	corrections.Record(ctx, s.Pipeline, metrics.OutcomeExhausted)
	return zero, &ExhaustedError{
		Pipeline:  s.Pipeline,
		FirstRaw:  text,
		FirstErr:  verr,
		RepairRaw: repaired,
		RepairErr: repairVerr,
	}
}
