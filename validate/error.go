/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package validate defines the tagged validation failure shared by the
// document validators. The two kinds matter to callers: a syntax failure means
// the text never parsed as JSON, a schema failure means it parsed but violated
// the document shape. Only schema failures carry a field path, and the repair
// prompt embeds the error string verbatim, so messages should say exactly
// which field is wrong and why.
package validate

import "fmt"

// Kind classifies a validation failure.
type Kind string

const (
	// KindSyntax means the candidate text was not well-formed JSON.
	KindSyntax Kind = "syntax"
	// KindSchema means the JSON parsed but violated the document shape.
	KindSchema Kind = "schema"
)

// Error is a validation failure with enough detail to drive a repair prompt.
type Error struct {
	// Kind distinguishes malformed JSON from shape violations.
	Kind Kind
	// Path is the offending field path (e.g. "slides[0].title").
	// Empty for syntax errors, which have no field to point at.
	Path string
	// Detail is the human-readable description of what went wrong.
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("%s error at %s: %s", e.Kind, e.Path, e.Detail)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, e.Detail)
	}
}

// Syntax wraps a JSON parse failure.
func Syntax(err error) *Error {
	return &Error{Kind: KindSyntax, Detail: err.Error()}
}

// Schemaf reports a shape violation at the given field path.
func Schemaf(path, format string, args ...any) *Error {
	return &Error{Kind: KindSchema, Path: path, Detail: fmt.Sprintf(format, args...)}
}

// Required reports a missing required field.
func Required(path string) *Error {
	return Schemaf(path, "required field is missing or empty")
}
