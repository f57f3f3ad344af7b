/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlegateway

import "strings"

// transientMarkers are fragments of Gemini API error messages that signal
// rate limiting, quota exhaustion, or a transient server-side failure. The
// SDK surfaces most of these as flat message text rather than typed errors,
// so classification is by (case-insensitive) substring.
var transientMarkers = []string{
	"429",
	"503",
	"resource exhausted",
	"resource_exhausted",
	"rate limit",
	"quota exceeded",
	"internal error",
	"server error",
}

// isRetryableGeminiError reports whether err is worth another attempt.
func isRetryableGeminiError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
