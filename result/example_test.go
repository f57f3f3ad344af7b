/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result_test

import (
	"fmt"

	"chainguard.dev/prdeck/result"
)

// ExampleExtractObject demonstrates pulling a JSON object out of a chatty
// model response.
func ExampleExtractObject() {
	response := "Sure! Here is the plan:\n" +
		"```json\n" +
		`{"presentation_title": "Faster Builds"}` + "\n" +
		"```\n" +
		"Let me know if you need anything else."

	fmt.Println(result.ExtractObject(response))

	// Output:
	// {"presentation_title": "Faster Builds"}
}

// ExampleExtractObject_fallback shows the soft-failure path: when no balanced
// object is found, the trimmed input comes back and the JSON parser reports
// the syntax error downstream.
func ExampleExtractObject_fallback() {
	fmt.Println(result.ExtractObject(`{"unbalanced": {"depth": 1}`))

	// Output:
	// {"unbalanced": {"depth": 1}
}
