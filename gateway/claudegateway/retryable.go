/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudegateway

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// retryableStatuses are the Anthropic API responses worth another attempt:
// rate limiting plus the transient 5xx family, including the
// Anthropic-specific 529 overloaded_error.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:    true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
	529:                           true,
}

// isRetryableClaudeError reports whether err carries a retryable API status.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return retryableStatuses[apiErr.StatusCode]
}
