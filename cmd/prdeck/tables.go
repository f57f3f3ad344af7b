/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io"
	"strconv"

	"chainguard.dev/prdeck/blueprint"
	"chainguard.dev/prdeck/githubpr"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// newTable builds a left-aligned markdown-style table.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 120,
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
	)
}

func printCommitTimeline(w io.Writer, commits []blueprint.ChangeRecord) {
	table := newTable(w, []string{"SHA", "Date", "Author", "Message"})
	for _, c := range commits {
		_ = table.Append([]string{c.ShortSHA, c.Date, c.AuthorName, firstLine(c.Message)})
	}
	_ = table.Render()
}

func printDiffStats(w io.Writer, changes blueprint.Changes) error {
	stats, err := githubpr.DiffStats(changes.TextDiff)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	table := newTable(w, []string{"File", "+", "-"})
	for _, s := range stats {
		_ = table.Append([]string{s.Path, strconv.Itoa(s.Additions), strconv.Itoa(s.Deletions)})
	}
	_ = table.Render()

	if len(changes.NonTextFiles) > 0 {
		fmt.Fprintln(w, "\nBinary or non-text files (excluded from the diff):")
		for _, f := range changes.NonTextFiles {
			fmt.Fprintf(w, "- %s\n", f)
		}
	}
	return nil
}
