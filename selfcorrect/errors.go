/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package selfcorrect

import (
	"fmt"

	"chainguard.dev/prdeck/validate"
)

// Attempt identifies which model call produced no usable text.
type Attempt string

const (
	// AttemptInitial is the first model call.
	AttemptInitial Attempt = "initial"
	// AttemptRepair is the single repair call.
	AttemptRepair Attempt = "repair"
)

// GatewayError means the gateway returned no usable text. The loop treats
// every underlying cause the same way (timeout, rate limit past the gateway's
// own retries, empty response); Err may be nil when the gateway returned
// empty text without an error.
type GatewayError struct {
	Attempt Attempt
	Err     error
}

func (e *GatewayError) Error() string {
	msg := "no response from model"
	if e.Attempt == AttemptRepair {
		msg = "repair produced no response from model"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ExhaustedError means both the initial attempt and the single repair attempt
// failed validation. It carries both raw texts and both validation errors so
// callers can log enough to diagnose the failure; no document is produced.
type ExhaustedError struct {
	Pipeline  string
	FirstRaw  string
	FirstErr  *validate.Error
	RepairRaw string
	RepairErr *validate.Error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("self-correction exhausted for %s: initial attempt: %v; repair attempt: %v",
		e.Pipeline, e.FirstErr, e.RepairErr)
}
