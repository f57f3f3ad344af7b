/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package plan

import (
	"context"
	"fmt"

	"chainguard.dev/prdeck/gateway"
	"chainguard.dev/prdeck/schema"
	"chainguard.dev/prdeck/selfcorrect"
	"chainguard.dev/prdeck/validate"
)

// Generate asks the model to outline a presentation for the given blueprint,
// which is embedded into the planning prompt as indented JSON. A malformed or
// out-of-shape response gets exactly one repair round trip before the run is
// abandoned; see the selfcorrect package for the escape errors.
func Generate(ctx context.Context, gw gateway.Interface, blueprint any) (SlidePlan, error) {
	return selfcorrect.Run(ctx, gw, selfcorrect.Strategy[SlidePlan]{
		Pipeline: "slide_plan",
		Initial: func() (string, string, error) {
			bound, err := plannerUser.BindJSON("blueprint", blueprint)
			if err != nil {
				return "", "", err
			}
			user, err := bound.Build()
			if err != nil {
				return "", "", err
			}
			system, err := plannerSystem.Build()
			if err != nil {
				return "", "", err
			}
			return user, system, nil
		},
		Repair:   RepairPrompt,
		Validate: Validate,
	})
}

// RepairPrompt builds the one-shot JSON fixer prompt, embedding the desired
// schema, the verbatim broken text, and the validation error.
func RepairPrompt(broken string, verr *validate.Error) (string, string, error) {
	desired, err := schema.Describe[SlidePlan]()
	if err != nil {
		return "", "", fmt.Errorf("describing slide plan schema: %w", err)
	}

	bound := fixerUser
	for name, value := range map[string]string{
		"desired_schema":   desired,
		"broken_json":      broken,
		"validation_error": verr.Error(),
	} {
		if bound, err = bound.BindText(name, value); err != nil {
			return "", "", err
		}
	}
	user, err := bound.Build()
	if err != nil {
		return "", "", err
	}
	system, err := fixerSystem.Build()
	if err != nil {
		return "", "", err
	}
	return user, system, nil
}
