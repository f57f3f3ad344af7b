/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubpr fetches pull request metadata, commits, and diffs, and
// prepares them for the blueprint stage.
package githubpr

import (
	"fmt"
	"regexp"
	"strconv"
)

var pullURL = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)$`)

// ParsePullURL splits a pull request URL into owner, repository, and number.
func ParsePullURL(url string) (owner, repo string, number int, err error) {
	m := pullURL.FindStringSubmatch(url)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid GitHub pull request URL: %q", url)
	}
	number, err = strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid pull request number in %q: %w", url, err)
	}
	return m[1], m[2], number, nil
}
