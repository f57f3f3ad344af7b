/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON-schema descriptions of the documents the models
// are asked to produce. The descriptions are embedded in repair prompts so the
// model sees the exact shape it failed to match.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator wraps jsonschema.Reflector with the defaults this project needs:
// inline definitions (no $ref indirection) so the schema reads top-to-bottom
// inside a prompt, and required-ness driven by struct tags.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator with prompt-friendly defaults.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			DoNotReference:             true,
		},
	}
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect derives the JSON schema for the provided value using a default generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// Describe renders the schema for T as pretty-printed JSON, suitable for
// embedding verbatim in a repair prompt.
func Describe[T any]() (string, error) {
	var zero T
	b, err := json.MarshalIndent(Reflect(&zero), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}
