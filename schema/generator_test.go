/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDoc struct {
	Title  string   `json:"title" jsonschema:"required"`
	Points []string `json:"points,omitempty"`
}

func TestReflect(t *testing.T) {
	s := Reflect(&sampleDoc{})
	require.NotNil(t, s)
	require.NotNil(t, s.Properties, "expected inline properties on expanded schema")

	for _, prop := range []string{"title", "points"} {
		_, ok := s.Properties.Get(prop)
		assert.True(t, ok, "schema missing property %q", prop)
	}
	assert.Contains(t, s.Required, "title")
}

func TestDescribe(t *testing.T) {
	desc, err := Describe[sampleDoc]()
	require.NoError(t, err)

	// The description must be self-contained: inline properties, no $ref
	// indirection, stable 2-space indentation.
	for _, want := range []string{`"title"`, `"points"`, `"required"`} {
		assert.Contains(t, desc, want)
	}
	assert.NotContains(t, desc, `"$ref"`, "definitions should be inlined")
	assert.Contains(t, desc, "\n  ", "expected 2-space indentation")
}
