/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubpr

import (
	"fmt"
	"strings"

	"chainguard.dev/prdeck/blueprint"
)

// SelectCommits resolves short SHAs against the fetched commit list,
// preserving the order the SHAs were given in. Every SHA must resolve;
// unknown ones are reported together so the caller can reprompt once.
func SelectCommits(all []blueprint.ChangeRecord, shortSHAs []string) ([]blueprint.ChangeRecord, error) {
	if len(shortSHAs) == 0 {
		return nil, fmt.Errorf("no commits selected")
	}

	byShort := make(map[string]blueprint.ChangeRecord, len(all))
	for _, c := range all {
		byShort[c.ShortSHA] = c
	}

	var selected []blueprint.ChangeRecord
	var unknown []string
	for _, sha := range shortSHAs {
		sha = strings.ToLower(strings.TrimSpace(sha))
		if sha == "" {
			continue
		}
		c, ok := byShort[sha]
		if !ok {
			unknown = append(unknown, sha)
			continue
		}
		selected = append(selected, c)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown commit SHAs: %s", strings.Join(unknown, ", "))
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no commits selected")
	}
	return selected, nil
}
