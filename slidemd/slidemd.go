/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package slidemd turns a validated slide plan into Slidev markdown, either
// by asking a model to write the deck in one call or by rendering it
// deterministically without one.
package slidemd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/prdeck/gateway"
	"chainguard.dev/prdeck/plan"
	"github.com/chainguard-dev/clog"
)

// Generate writes the full deck with a single model call. The response is
// prose markdown, not JSON, so there is no repair loop; leftover wrapping
// the model adds despite instructions is stripped instead.
func Generate(ctx context.Context, gw gateway.Interface, p plan.SlidePlan) (string, error) {
	bound, err := writerUser.BindJSON("slide_plan", p)
	if err != nil {
		return "", err
	}
	user, err := bound.Build()
	if err != nil {
		return "", err
	}
	system, err := writerSystem.Build()
	if err != nil {
		return "", err
	}

	clog.FromContext(ctx).With("slides", len(p.Slides)).Infof("generating slide markdown")
	text, err := gw.Respond(ctx, user, system)
	if err != nil {
		return "", fmt.Errorf("generating slide markdown: %w", err)
	}
	if text == "" {
		return "", errors.New("generating slide markdown: no response from model")
	}
	return cleanup(text), nil
}

// cleanup removes the wrapping models sometimes add around the deck: a
// fenced code block enclosing the whole response, or <slide_markdown> tags.
func cleanup(text string) string {
	out := strings.TrimSpace(text)

	if strings.HasPrefix(out, "```") && strings.HasSuffix(out, "```") {
		lines := strings.Split(out, "\n")
		if len(lines) >= 2 {
			out = strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
		}
	}

	out = strings.TrimSpace(strings.TrimPrefix(out, "<slide_markdown>"))
	out = strings.TrimSpace(strings.TrimSuffix(out, "</slide_markdown>"))
	return out
}
