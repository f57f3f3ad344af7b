/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceMarker matches markdown code fence delimiters, optionally followed by a
// language tag (```json, ```yaml, or a bare ```).
var fenceMarker = regexp.MustCompile("```[a-zA-Z0-9]*")

// ExtractObject returns the substring of a model response most likely to be a
// complete JSON object. It strips any markdown code fences, locates the first
// '{', and scans forward with a brace-depth counter until the depth returns to
// zero. If no '{' exists, or the braces never balance, the trimmed fence-free
// text is returned unchanged so the caller's JSON parser produces the error.
//
// The scan does not special-case braces inside JSON string literals. A string
// value containing a bare '}' can therefore truncate the extraction early.
// This is a known limitation of the best-effort scan, not a guarantee.
func ExtractObject(text string) string {
	cleaned := fenceMarker.ReplaceAllString(text, "")

	start := strings.IndexByte(cleaned, '{')
	if start == -1 {
		return strings.TrimSpace(cleaned)
	}

	depth := 0
	for i := start; i < len(cleaned); i++ {
		switch cleaned[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cleaned[start : i+1]
			}
		}
	}

	// Unbalanced braces: fall back to the trimmed input.
	return strings.TrimSpace(cleaned)
}

// Extract extracts the JSON object from a model response and unmarshals it
// into the provided type. It combines ExtractObject with json.Unmarshal for
// convenience.
func Extract[T any](responseText string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(ExtractObject(responseText)), &out); err != nil {
		return out, err
	}
	return out, nil
}
