/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package blueprint aggregates everything the planning stage needs to know
// about a pull request into a single validated document. The JSON field
// names are part of the planning prompt's vocabulary (the prompt refers to
// 'pr_summary' and 'changes.ai_summary' by name), so they are stable.
package blueprint

import (
	"fmt"
	"time"
)

// ChangeRecord is one commit as it appears in the blueprint.
type ChangeRecord struct {
	SHA        string `json:"sha"`
	ShortSHA   string `json:"short_sha"`
	Message    string `json:"message"`
	AuthorName string `json:"author_name"`
	Date       string `json:"date"` // ISO-8601, used for ordering
	URL        string `json:"url"`
}

// PRSummary is the pull request's headline metadata.
type PRSummary struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Changes couples the combined diff with its model-written summary.
type Changes struct {
	AISummary    string   `json:"ai_summary"`
	NonTextFiles []string `json:"non_text_files_changed"`
	TextDiff     string   `json:"text_diff"`
}

// ContextBlueprint is the validated aggregate handed to the slide planner.
type ContextBlueprint struct {
	PRSummary           PRSummary      `json:"pr_summary"`
	SelectedCommits     []ChangeRecord `json:"selected_commits"`
	Changes             Changes        `json:"changes"`
	GenerationTimestamp string         `json:"generation_timestamp"`
}

// AggregationError reports which field made the assembled blueprint invalid.
type AggregationError struct {
	Path   string
	Detail string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("blueprint aggregation failed at %s: %s", e.Path, e.Detail)
}

// Assemble combines the fetched metadata, the selected commits, and the
// summarized changes into a blueprint, stamping the generation time. All
// inputs are checked in one shot so a bug upstream surfaces here rather
// than as a confusing model response later.
func Assemble(summary PRSummary, commits []ChangeRecord, changes Changes) (ContextBlueprint, error) {
	switch {
	case summary.Title == "":
		return ContextBlueprint{}, &AggregationError{Path: "pr_summary.title", Detail: "missing"}
	case summary.Author == "":
		return ContextBlueprint{}, &AggregationError{Path: "pr_summary.author", Detail: "missing"}
	case summary.URL == "":
		return ContextBlueprint{}, &AggregationError{Path: "pr_summary.url", Detail: "missing"}
	case len(commits) == 0:
		return ContextBlueprint{}, &AggregationError{Path: "selected_commits", Detail: "at least one commit is required"}
	case changes.AISummary == "":
		return ContextBlueprint{}, &AggregationError{Path: "changes.ai_summary", Detail: "missing"}
	}
	for i, c := range commits {
		if c.SHA == "" {
			return ContextBlueprint{}, &AggregationError{
				Path: fmt.Sprintf("selected_commits[%d].sha", i), Detail: "missing",
			}
		}
		if c.ShortSHA == "" {
			return ContextBlueprint{}, &AggregationError{
				Path: fmt.Sprintf("selected_commits[%d].short_sha", i), Detail: "missing",
			}
		}
	}

	return ContextBlueprint{
		PRSummary:           summary,
		SelectedCommits:     commits,
		Changes:             changes,
		GenerationTimestamp: time.Now().Format(time.RFC3339),
	}, nil
}
