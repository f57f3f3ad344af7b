/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides injection-resistant prompt construction.
// Templates are literal strings with {{name}} placeholders; dynamic data is
// bound through standard encoders (JSON, YAML) so escaping is never left to
// string concatenation. Prompts are immutable: every Bind returns a new
// instance, making package-level templates safe to share.
package promptbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// stringLiteral only accepts untyped string constants, keeping templates and
// literal bindings under developer control.
type stringLiteral string

// Prompt is a template with named placeholders and their bound values.
type Prompt struct {
	template string
	bindings map[string]func() (string, error)
}

// NewPrompt parses a template literal and registers its placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	p := &Prompt{
		template: string(template),
		bindings: make(map[string]func() (string, error)),
	}

	// Walk once to validate placeholder syntax and register unbound slots.
	_, err := walkTemplate(p.template, func(name string) (string, error) {
		if _, ok := p.bindings[name]; !ok {
			p.bindings[name] = func() (string, error) {
				return "", fmt.Errorf("unbound placeholder: %s", name)
			}
		}
		return "", nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Placeholders returns the set of placeholder names found in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindString binds a literal, developer-controlled string to a placeholder.
func (p *Prompt) BindString(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, func() (string, error) { return string(value), nil })
}

// BindText binds free-form text (e.g. a diff or a model response) verbatim.
// Use BindJSON or BindYAML when the data has structure worth preserving.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	return p.bind(name, func() (string, error) { return value, nil })
}

// BindJSON binds structured data, marshaled as 2-space-indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON for %q: %w", name, err)
		}
		return string(b), nil
	})
}

// BindYAML binds structured data, marshaled as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshaling YAML for %q: %w", name, err)
		}
		return string(b), nil
	})
}

func (p *Prompt) bind(name string, value func() (string, error)) (*Prompt, error) {
	if _, ok := p.bindings[name]; !ok {
		return nil, fmt.Errorf("binding %q not found in template", name)
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = value
	return next, nil
}

// Build renders the final prompt, failing if any placeholder is unbound.
// Substitution is single-pass: bound values are never re-scanned for
// placeholders, so data cannot smuggle in new substitutions.
func (p *Prompt) Build() (string, error) {
	return walkTemplate(p.template, func(name string) (string, error) {
		return p.bindings[name]()
	})
}

// walkTemplate tokenizes the template and calls resolve for each placeholder.
func walkTemplate(template string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder

	for len(template) > 0 {
		start := strings.Index(template, "{{")
		if start == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:start])

		end := strings.Index(template[start:], "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}
		end += start + 2

		name := strings.TrimSpace(template[start+2 : end-2])
		if !isIdentifier(name) {
			return "", fmt.Errorf("invalid placeholder identifier %q", name)
		}

		val, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(val)

		template = template[end:]
	}

	return out.String(), nil
}

// isIdentifier reports whether s is a letter followed by letters, digits, or
// underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case i == 0 && !unicode.IsLetter(r):
			return false
		case i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_':
			return false
		}
	}
	return s != ""
}
