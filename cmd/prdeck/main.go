/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// prdeck turns a GitHub pull request into a Slidev slide deck. It fetches
// the PR and its commits, builds a combined diff for a selected commit
// range, has a model summarize and outline the changes, and writes the
// final markdown deck alongside the intermediate artifacts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"chainguard.dev/prdeck/blueprint"
	"chainguard.dev/prdeck/gateway"
	"chainguard.dev/prdeck/githubpr"
	"chainguard.dev/prdeck/plan"
	"chainguard.dev/prdeck/slidemd"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/oauth2"
)

type config struct {
	// GitHubToken is optional; public repositories work unauthenticated
	// within rate limits.
	GitHubToken string `env:"GITHUB_TOKEN"`
	Model       string `env:"MODEL,default=gemini-2.0-flash"`
	OutputDir   string `env:"OUTPUT_DIR,default=."`

	// Zero keeps the gateway defaults (0.2 / 8192).
	Temperature float64 `env:"TEMPERATURE"`
	MaxTokens   int64   `env:"MAX_TOKENS"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = clog.WithLogger(ctx, clog.New(slog.Default().Handler()))

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	commitsFlag := flag.String("commits", "", "comma- or space-separated short SHAs to include (default: prompt)")
	noAIWriter := flag.Bool("no-ai-writer", false, "render the deck deterministically instead of asking the model")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <pull-request-url>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, cfg, flag.Arg(0), *commitsFlag, *noAIWriter); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}

func run(ctx context.Context, cfg config, prURL, commitsFlag string, noAIWriter bool) error {
	owner, repo, number, err := githubpr.ParsePullURL(prURL)
	if err != nil {
		return err
	}

	var ts oauth2.TokenSource
	if cfg.GitHubToken != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
	}
	gh := githubpr.New(ctx, ts)

	summary, commits, err := gh.Fetch(ctx, owner, repo, number)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\nby %s (%s)\n\n", summary.Title, summary.Author, summary.URL)
	printCommitTimeline(os.Stdout, commits)

	selected, err := selectCommits(commits, commitsFlag)
	if err != nil {
		return err
	}
	fmt.Println("\nSelected commits:")
	for _, c := range selected {
		fmt.Printf("- %s: %s\n", c.ShortSHA, firstLine(c.Message))
	}

	changes, err := gh.CombinedDiff(ctx, owner, repo, selected)
	if err != nil {
		return err
	}
	if changes.TextDiff == "" {
		return fmt.Errorf("the selected commits contain no text changes to present")
	}
	if err := printDiffStats(os.Stdout, changes); err != nil {
		return err
	}

	gw, err := gateway.New(ctx, cfg.Model, gateway.Settings{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return err
	}

	changes.AISummary, err = blueprint.Summarize(ctx, gw, summary.Description, githubpr.CleanDiff(changes.TextDiff))
	if err != nil {
		return err
	}

	bp, err := blueprint.Assemble(summary, selected, changes)
	if err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "context.json"), bp); err != nil {
		return err
	}

	slidePlan, err := plan.Generate(ctx, gw, bp)
	if err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "slide_plan.json"), slidePlan); err != nil {
		return err
	}

	var deck string
	if noAIWriter {
		deck, err = slidemd.Render(slidePlan)
	} else {
		deck, err = slidemd.Generate(ctx, gw, slidePlan)
	}
	if err != nil {
		return err
	}

	deckPath := filepath.Join(cfg.OutputDir, "presentation.md")
	if err := os.WriteFile(deckPath, []byte(deck+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", deckPath, err)
	}

	fmt.Printf("\nWrote %s. Preview it with: slidev %s --open\n", deckPath, deckPath)
	return nil
}

// selectCommits resolves the -commits flag, or prompts on stdin when the
// flag is empty.
func selectCommits(all []blueprint.ChangeRecord, commitsFlag string) ([]blueprint.ChangeRecord, error) {
	if commitsFlag != "" {
		return githubpr.SelectCommits(all, strings.FieldsFunc(commitsFlag, func(r rune) bool {
			return r == ',' || r == ' '
		}))
	}
	return promptForCommits(os.Stdin, os.Stdout, all)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
