/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template stringLiteral
		wantErr  string
		want     map[string]struct{}
	}{{
		name:     "no placeholders",
		template: "plain text",
		want:     map[string]struct{}{},
	}, {
		name:     "single placeholder",
		template: "Summarize {{diff}} please",
		want:     map[string]struct{}{"diff": {}},
	}, {
		name:     "repeated placeholder counted once",
		template: "{{a}} and {{a}} and {{b}}",
		want:     map[string]struct{}{"a": {}, "b": {}},
	}, {
		name:     "unclosed placeholder",
		template: "bad {{a",
		wantErr:  "unclosed placeholder",
	}, {
		name:     "empty identifier",
		template: "bad {{}}",
		wantErr:  "invalid placeholder identifier",
	}, {
		name:     "hyphenated identifier",
		template: "bad {{a-b}}",
		wantErr:  "invalid placeholder identifier",
	}, {
		name:     "identifier starting with digit",
		template: "bad {{1a}}",
		wantErr:  "invalid placeholder identifier",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrompt(tt.template)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("NewPrompt() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrompt() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Placeholders()); diff != "" {
				t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	p := MustNewPrompt("Fix this JSON:\n{{broken}}\nagainst schema {{desired}}")

	// Unbound placeholders fail the build.
	if _, err := p.Build(); err == nil || !strings.Contains(err.Error(), "unbound placeholder") {
		t.Fatalf("Build() with unbound placeholders: error = %v", err)
	}

	bound := p.MustBindText("broken", `{"a":`).MustBindString("desired", "object with key a")
	got, err := bound.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "Fix this JSON:\n{\"a\":\nagainst schema object with key a"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}

	// The original prompt is unchanged: bindings return new instances.
	if _, err := p.Build(); err == nil {
		t.Error("original prompt should still have unbound placeholders")
	}
}

func TestBindJSON(t *testing.T) {
	p := MustNewPrompt("Context:\n{{blueprint}}").MustBindJSON("blueprint", map[string]string{"title": "X"})
	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "Context:\n{\n  \"title\": \"X\"\n}"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBindYAML(t *testing.T) {
	p := MustNewPrompt("Frontmatter:\n{{fm}}").MustBindYAML("fm", map[string]string{"layout": "cover"})
	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(got, "layout: cover") {
		t.Errorf("Build() = %q, want YAML containing %q", got, "layout: cover")
	}
}

func TestBindErrors(t *testing.T) {
	p := MustNewPrompt("{{a}}")

	if _, err := p.BindText("missing", "x"); err == nil {
		t.Error("binding unknown placeholder should fail")
	}
}

// TestNoTransitiveSubstitution verifies bound values containing placeholder
// syntax are not re-expanded.
func TestNoTransitiveSubstitution(t *testing.T) {
	p := MustNewPrompt("{{a}} {{b}}").
		MustBindText("a", "{{b}}").
		MustBindText("b", "value")

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got != "{{b}} value" {
		t.Errorf("Build() = %q, want %q", got, "{{b}} value")
	}
}
