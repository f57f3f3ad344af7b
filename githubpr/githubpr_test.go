/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubpr

import (
	"strings"
	"testing"

	"chainguard.dev/prdeck/blueprint"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-github/v84/github"
)

func TestParsePullURL(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantNum   int
		wantErr   bool
	}{{
		url:       "https://github.com/apache/beam/pull/33711",
		wantOwner: "apache",
		wantRepo:  "beam",
		wantNum:   33711,
	}, {
		url:       "https://github.com/octo-org/some.repo/pull/1",
		wantOwner: "octo-org",
		wantRepo:  "some.repo",
		wantNum:   1,
	}, {
		url:     "https://github.com/apache/beam/issues/33711",
		wantErr: true,
	}, {
		url:     "https://gitlab.com/apache/beam/pull/33711",
		wantErr: true,
	}, {
		url:     "https://github.com/apache/beam/pull/abc",
		wantErr: true,
	}, {
		url:     "",
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, num, err := ParsePullURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePullURL(%q) error = nil, want error", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePullURL(%q) error = %v", tt.url, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo || num != tt.wantNum {
				t.Errorf("ParsePullURL(%q) = (%q, %q, %d)", tt.url, owner, repo, num)
			}
		})
	}
}

func commitsFixture() []blueprint.ChangeRecord {
	return []blueprint.ChangeRecord{
		{SHA: strings.Repeat("a", 40), ShortSHA: "aaaaaaa", Date: "2026-08-01T10:00:00Z"},
		{SHA: strings.Repeat("b", 40), ShortSHA: "bbbbbbb", Date: "2026-08-02T10:00:00Z"},
		{SHA: strings.Repeat("c", 40), ShortSHA: "ccccccc", Date: "2026-08-03T10:00:00Z"},
	}
}

func TestSelectCommits(t *testing.T) {
	all := commitsFixture()

	selected, err := SelectCommits(all, []string{"CCCCCCC", " aaaaaaa "})
	if err != nil {
		t.Fatalf("SelectCommits() error = %v", err)
	}
	// Order follows the request, not the timeline.
	want := []string{"ccccccc", "aaaaaaa"}
	got := make([]string, len(selected))
	for i, c := range selected {
		got[i] = c.ShortSHA
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectCommits() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCommitsErrors(t *testing.T) {
	all := commitsFixture()

	if _, err := SelectCommits(all, nil); err == nil {
		t.Error("empty selection should fail")
	}
	_, err := SelectCommits(all, []string{"aaaaaaa", "1234567", "fffffff"})
	if err == nil {
		t.Fatal("unknown SHAs should fail")
	}
	// All unknown SHAs are reported in one pass.
	for _, sha := range []string{"1234567", "fffffff"} {
		if !strings.Contains(err.Error(), sha) {
			t.Errorf("error %q missing SHA %s", err, sha)
		}
	}
}

func TestSortByDate(t *testing.T) {
	records := commitsFixture()
	// Shuffle into reverse order.
	records[0], records[2] = records[2], records[0]

	sortByDate(records)
	if records[0].ShortSHA != "aaaaaaa" || records[2].ShortSHA != "ccccccc" {
		t.Errorf("sortByDate() order = %s, %s, %s",
			records[0].ShortSHA, records[1].ShortSHA, records[2].ShortSHA)
	}
}

func TestCleanDiff(t *testing.T) {
	raw := strings.Join([]string{
		"diff --git a/main.go b/main.go",
		"index 83db48f..f735c2d 100644",
		"--- a/main.go",
		"+++ b/main.go",
		"@@ -1,3 +1,4 @@",
		" package main",
		"+// added",
		"-// removed",
	}, "\n")

	want := strings.Join([]string{
		" package main",
		"+// added",
		"-// removed",
	}, "\n")

	if got := CleanDiff(raw); got != want {
		t.Errorf("CleanDiff() = %q, want %q", got, want)
	}
	if got := CleanDiff(""); got != "" {
		t.Errorf("CleanDiff(\"\") = %q", got)
	}
}

func TestPartitionFiles(t *testing.T) {
	files := []*github.CommitFile{{
		Filename: github.Ptr("main.go"),
		Status:   github.Ptr("modified"),
		Patch:    github.Ptr("@@ -1 +1 @@\n-old\n+new"),
	}, {
		Filename: github.Ptr("logo.png"),
		Status:   github.Ptr("added"),
	}, {
		// SVG patches come back as text but stay out of the diff.
		Filename: github.Ptr("icon.SVG"),
		Status:   github.Ptr("added"),
		Patch:    github.Ptr("@@ -0,0 +1 @@\n+<svg/>"),
	}}

	textDiff, nonText := partitionFiles(files)
	if !strings.Contains(textDiff, "diff --git a/main.go b/main.go") {
		t.Errorf("text diff missing synthesized header:\n%s", textDiff)
	}
	if !strings.Contains(textDiff, "+new") {
		t.Errorf("text diff missing patch body:\n%s", textDiff)
	}
	if diff := cmp.Diff([]string{"Added: logo.png", "Added: icon.SVG"}, nonText); diff != "" {
		t.Errorf("non-text files mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffStats(t *testing.T) {
	raw := strings.Join([]string{
		"diff --git a/main.go b/main.go",
		"--- a/main.go",
		"+++ b/main.go",
		"@@ -1,2 +1,3 @@",
		" package main",
		"+// one",
		"+// two",
		"-// gone",
		"diff --git a/util.go b/util.go",
		"--- a/util.go",
		"+++ b/util.go",
		"@@ -1 +1 @@",
		"-old",
		"+new",
	}, "\n")

	stats, err := DiffStats(raw)
	if err != nil {
		t.Fatalf("DiffStats() error = %v", err)
	}
	want := []FileStat{
		{Path: "main.go", Additions: 2, Deletions: 1},
		{Path: "util.go", Additions: 1, Deletions: 1},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("DiffStats() mismatch (-want +got):\n%s", diff)
	}

	empty, err := DiffStats("")
	if err != nil || empty != nil {
		t.Errorf("DiffStats(\"\") = %v, %v", empty, err)
	}
}
