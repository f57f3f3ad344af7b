/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package blueprint

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/prdeck/gateway"
	"github.com/chainguard-dev/clog"
)

// Summarize turns a cleaned diff into the structured change description that
// anchors the blueprint. This is free-form markdown, not JSON, so it gets no
// repair loop; a missing response is simply an error.
func Summarize(ctx context.Context, gw gateway.Interface, prDescription, cleanedDiff string) (string, error) {
	if cleanedDiff == "" {
		return "", errors.New("nothing to summarize: cleaned diff is empty")
	}

	bound, err := summaryUser.BindText("pr_description", prDescription)
	if err != nil {
		return "", err
	}
	bound, err = bound.BindText("cleaned_diff", cleanedDiff)
	if err != nil {
		return "", err
	}
	user, err := bound.Build()
	if err != nil {
		return "", err
	}
	system, err := summarySystem.Build()
	if err != nil {
		return "", err
	}

	clog.FromContext(ctx).With("diff_bytes", len(cleanedDiff)).Infof("summarizing changes")
	text, err := gw.Respond(ctx, user, system)
	if err != nil {
		return "", fmt.Errorf("summarizing changes: %w", err)
	}
	if text == "" {
		return "", errors.New("summarizing changes: no response from model")
	}
	return text, nil
}
