/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chainguard.dev/prdeck/blueprint"
	"chainguard.dev/prdeck/githubpr"
)

// promptForCommits reads short SHAs from in until a line resolves cleanly
// against the commit list.
func promptForCommits(in io.Reader, out io.Writer, all []blueprint.ChangeRecord) ([]blueprint.ChangeRecord, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter the short SHAs of the commits to include, separated by spaces: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading commit selection: %w", err)
			}
			return nil, fmt.Errorf("no commit selection provided")
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		selected, err := githubpr.SelectCommits(all, strings.Fields(line))
		if err != nil {
			fmt.Fprintf(out, "%v, please try again.\n", err)
			continue
		}
		return selected, nil
	}
}
