/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{{
		name: "schema error with path",
		err:  Required("slides[0].title"),
		want: "schema error at slides[0].title: required field is missing or empty",
	}, {
		name: "schema error with formatted detail",
		err:  Schemaf("slides[2].content", "expected a list of strings, got %T", 42),
		want: "schema error at slides[2].content: expected a list of strings, got int",
	}, {
		name: "syntax error has no path",
		err:  Syntax(json.Unmarshal([]byte("{"), &struct{}{})),
		want: "syntax error: unexpected end of JSON input",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	if k := Syntax(json.Unmarshal([]byte("nope"), &struct{}{})).Kind; k != KindSyntax {
		t.Errorf("Syntax().Kind = %q, want %q", k, KindSyntax)
	}
	if k := Required("x").Kind; k != KindSchema {
		t.Errorf("Required().Kind = %q, want %q", k, KindSchema)
	}
	if p := Syntax(json.Unmarshal([]byte("nope"), &struct{}{})); strings.Contains(p.Error(), " at ") {
		t.Errorf("syntax error should not render a field path: %q", p.Error())
	}
}
