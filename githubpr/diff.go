/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubpr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/waigani/diffparser"
)

// binaryExtensions are file types excluded from the text diff even when the
// API returns a patch for them.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".ico": true, ".webp": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".exe": true, ".dll": true, ".so": true, ".jar": true, ".class": true,
	".mp4": true, ".mov": true, ".avi": true, ".mp3": true, ".wav": true,
	".svg": true,
	".psd": true, ".ai": true, ".eps": true,
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true,
	".bin": true, ".dat": true,
	".apk": true, ".ipa": true,
	".dmg": true, ".iso": true,
	".pkl": true, ".joblib": true,
}

func isBinaryPath(name string) bool {
	return binaryExtensions[strings.ToLower(filepath.Ext(name))]
}

// CleanDiff strips git metadata lines (file headers, index lines, hunk
// markers) from a unified diff, leaving only content lines. The result is
// what gets embedded in the summarization prompt, where the metadata is
// token noise.
func CleanDiff(raw string) string {
	if raw == "" {
		return ""
	}
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "--- a/"),
			strings.HasPrefix(line, "+++ b/"),
			strings.HasPrefix(line, "@@ "):
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// FileStat summarizes one file's churn within a combined diff.
type FileStat struct {
	Path      string
	Additions int
	Deletions int
}

// DiffStats parses a combined unified diff and reports per-file additions
// and deletions, in the order the files appear.
func DiffStats(raw string) ([]FileStat, error) {
	if raw == "" {
		return nil, nil
	}
	diff, err := diffparser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	stats := make([]FileStat, 0, len(diff.Files))
	for _, f := range diff.Files {
		stat := FileStat{Path: f.NewName}
		if stat.Path == "" {
			stat.Path = f.OrigName
		}
		for _, hunk := range f.Hunks {
			for _, line := range hunk.WholeRange.Lines {
				switch line.Mode {
				case diffparser.ADDED:
					stat.Additions++
				case diffparser.REMOVED:
					stat.Deletions++
				}
			}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
