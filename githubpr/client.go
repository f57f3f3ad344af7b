/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubpr

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"chainguard.dev/prdeck/blueprint"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API for the pull-request-to-blueprint flow.
type Client struct {
	gh *github.Client
}

// New creates a Client. A nil token source yields an unauthenticated client,
// which works for public repositories within rate limits.
func New(ctx context.Context, ts oauth2.TokenSource) *Client {
	if ts == nil {
		return &Client{gh: github.NewClient(nil)}
	}
	return &Client{gh: github.NewClient(oauth2.NewClient(ctx, ts))}
}

// Fetch retrieves the pull request's headline metadata and its full commit
// list, ordered by author date ascending.
func (c *Client) Fetch(ctx context.Context, owner, repo string, number int) (blueprint.PRSummary, []blueprint.ChangeRecord, error) {
	log := clog.FromContext(ctx).With("owner", owner, "repo", repo, "pr", number)
	log.Infof("fetching pull request")

	pr, _, err := c.gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return blueprint.PRSummary{}, nil, fmt.Errorf("fetching pull request %s/%s#%d: %w", owner, repo, number, err)
	}
	summary := blueprint.PRSummary{
		Title:       pr.GetTitle(),
		Author:      pr.GetUser().GetLogin(),
		Description: pr.GetBody(),
		URL:         pr.GetHTMLURL(),
	}

	var records []blueprint.ChangeRecord
	opts := &github.ListOptions{PerPage: 100}
	for {
		commits, resp, err := c.gh.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			return blueprint.PRSummary{}, nil, fmt.Errorf("listing commits for %s/%s#%d: %w", owner, repo, number, err)
		}
		for _, commit := range commits {
			sha := commit.GetSHA()
			records = append(records, blueprint.ChangeRecord{
				SHA:        sha,
				ShortSHA:   shortSHA(sha),
				Message:    commit.GetCommit().GetMessage(),
				AuthorName: commit.GetCommit().GetAuthor().GetName(),
				Date:       commit.GetCommit().GetAuthor().GetDate().UTC().Format(time.RFC3339),
				URL:        commit.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sortByDate(records)
	log.With("commits", len(records)).Infof("fetched pull request")
	return summary, records, nil
}

// CombinedDiff compares the parent of the earliest selected commit against
// the latest selected commit and splits the result into text patches and
// binary file descriptors. Each patch is prefixed with a git header so the
// combined text remains parseable as a unified diff.
func (c *Client) CombinedDiff(ctx context.Context, owner, repo string, selected []blueprint.ChangeRecord) (blueprint.Changes, error) {
	if len(selected) == 0 {
		return blueprint.Changes{}, fmt.Errorf("no commits selected")
	}
	selected = slices.Clone(selected)
	sortByDate(selected)
	first, last := selected[0], selected[len(selected)-1]

	base, _, err := c.gh.Repositories.GetCommit(ctx, owner, repo, first.SHA, nil)
	if err != nil {
		return blueprint.Changes{}, fmt.Errorf("fetching commit %s: %w", first.ShortSHA, err)
	}
	if len(base.Parents) == 0 {
		return blueprint.Changes{}, fmt.Errorf("commit %s has no parent to diff against", first.ShortSHA)
	}
	baseSHA := base.Parents[0].GetSHA()

	comparison, _, err := c.gh.Repositories.CompareCommits(ctx, owner, repo, baseSHA, last.SHA, nil)
	if err != nil {
		return blueprint.Changes{}, fmt.Errorf("comparing %s...%s: %w", shortSHA(baseSHA), last.ShortSHA, err)
	}

	textDiff, nonText := partitionFiles(comparison.Files)
	clog.FromContext(ctx).With(
		"base", shortSHA(baseSHA),
		"head", last.ShortSHA,
		"binary_files", len(nonText),
	).Infof("built combined diff")

	return blueprint.Changes{TextDiff: textDiff, NonTextFiles: nonText}, nil
}

// partitionFiles splits compared files into a combined unified diff and a
// list of "Status: filename" descriptors for files without usable patches.
func partitionFiles(files []*github.CommitFile) (string, []string) {
	var patches []string
	nonText := []string{}
	for _, f := range files {
		name := f.GetFilename()
		if f.GetPatch() == "" || isBinaryPath(name) {
			nonText = append(nonText, fmt.Sprintf("%s: %s", capitalize(f.GetStatus()), name))
			continue
		}
		patches = append(patches, fmt.Sprintf(
			"diff --git a/%s b/%s\n--- a/%s\n+++ b/%s\n%s",
			name, name, name, name, f.GetPatch()))
	}
	return strings.Join(patches, "\n"), nonText
}

func sortByDate(records []blueprint.ChangeRecord) {
	slices.SortStableFunc(records, func(a, b blueprint.ChangeRecord) int {
		return strings.Compare(a.Date, b.Date)
	})
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
