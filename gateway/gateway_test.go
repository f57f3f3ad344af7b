/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"strings"
	"testing"
)

func TestNewRejectsUnknownModels(t *testing.T) {
	t.Parallel()
	for _, model := range []string{"", "gpt-4o", "llama-3", "gemini2"} {
		if _, err := New(context.Background(), model, Settings{}); err == nil {
			t.Errorf("New(%q) should have failed", model)
		} else if !strings.Contains(err.Error(), "unsupported model") {
			t.Errorf("New(%q) error = %v, want unsupported model", model, err)
		}
	}
}
