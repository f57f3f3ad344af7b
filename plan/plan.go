/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package plan models the intermediate slide plan: the structured outline a
// model produces from a pull-request blueprint before any markdown is
// written. The JSON field names here are the contract with the planning
// prompts, so renaming a tag means retraining the prompt.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"chainguard.dev/prdeck/validate"
)

// Slide types the planner is instructed to emit.
const (
	TypeTitle   = "title"
	TypeContent = "content"
	TypeCode    = "code"
)

// StringList is a []string that also accepts a bare JSON string, coercing it
// to a one-element list. Models routinely emit "content": "one bullet" where
// a list is expected; folding that during parse keeps it out of the repair
// loop.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = items
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		// Report the same error type the decoder uses for mismatched
		// builtin fields, so Validate classifies this as a schema error
		// rather than a parse failure.
		return &json.UnmarshalTypeError{
			Value: jsonValueKind(data),
			Type:  reflect.TypeOf([]string(nil)),
			Field: "content",
		}
	}
	*s = StringList{single}
	return nil
}

// jsonValueKind names the JSON value in data for error messages, mirroring
// the vocabulary of json.UnmarshalTypeError ("number", "object", ...).
func jsonValueKind(data []byte) string {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "bool"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty input"
}

// CodeBlock is a highlighted snippet on a code slide.
type CodeBlock struct {
	Language string `json:"language" jsonschema:"required"`
	Code     string `json:"code" jsonschema:"required"`
}

// Slide is one entry in the plan. Only the type and title are mandatory;
// the remaining fields depend on the slide type.
type Slide struct {
	SlideType    string     `json:"slide_type" jsonschema:"required"`
	Title        string     `json:"title" jsonschema:"required"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Content      StringList `json:"content,omitempty"`
	CodeBlock    *CodeBlock `json:"code_block,omitempty"`
	SpeakerNotes string     `json:"speaker_notes,omitempty"`
}

// SlidePlan is the full outline for a presentation.
type SlidePlan struct {
	PresentationTitle string  `json:"presentation_title" jsonschema:"required"`
	Slides            []Slide `json:"slides" jsonschema:"required"`
}

// Validate parses candidate JSON into a SlidePlan and checks the document
// shape. Only malformed or truncated JSON comes back as a syntax error;
// well-formed JSON with a wrong-typed field, like other shape violations,
// carries the offending field path (e.g. "slides[0].title") so a repair
// prompt can point the model at the exact problem.
func Validate(candidate string) (SlidePlan, *validate.Error) {
	var plan SlidePlan
	if err := json.Unmarshal([]byte(candidate), &plan); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return SlidePlan{}, validate.Schemaf(typeErr.Field, "cannot use %s as %s", typeErr.Value, typeErr.Type)
		}
		return SlidePlan{}, validate.Syntax(err)
	}

	if plan.PresentationTitle == "" {
		return SlidePlan{}, validate.Required("presentation_title")
	}
	if len(plan.Slides) == 0 {
		return SlidePlan{}, validate.Schemaf("slides", "at least one slide is required")
	}
	for i, slide := range plan.Slides {
		if slide.SlideType == "" {
			return SlidePlan{}, validate.Required(fmt.Sprintf("slides[%d].slide_type", i))
		}
		if slide.Title == "" {
			return SlidePlan{}, validate.Required(fmt.Sprintf("slides[%d].title", i))
		}
		if cb := slide.CodeBlock; cb != nil {
			if cb.Language == "" {
				return SlidePlan{}, validate.Required(fmt.Sprintf("slides[%d].code_block.language", i))
			}
			if cb.Code == "" {
				return SlidePlan{}, validate.Required(fmt.Sprintf("slides[%d].code_block.code", i))
			}
		}
	}
	return plan, nil
}
