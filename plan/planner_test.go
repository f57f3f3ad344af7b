/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package plan

import (
	"context"
	"strings"
	"testing"
)

type scriptedGateway struct {
	responses []string
	prompts   []string
	systems   []string
}

func (g *scriptedGateway) Respond(_ context.Context, user, system string) (string, error) {
	g.prompts = append(g.prompts, user)
	g.systems = append(g.systems, system)
	text := ""
	if len(g.responses) > 0 {
		text, g.responses = g.responses[0], g.responses[1:]
	}
	return text, nil
}

func TestGenerate(t *testing.T) {
	gw := &scriptedGateway{responses: []string{
		"Here is the plan:\n```json\n" + `{
		  "presentation_title": "Retry Budgets",
		  "slides": [{"slide_type": "title", "title": "Retry Budgets"}]
		}` + "\n```",
	}}

	blueprint := map[string]any{"pr_summary": map[string]any{"title": "Add retry budgets"}}
	plan, err := Generate(context.Background(), gw, blueprint)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if plan.PresentationTitle != "Retry Budgets" {
		t.Errorf("PresentationTitle = %q", plan.PresentationTitle)
	}
	if len(gw.prompts) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gw.prompts))
	}
	// The blueprint rides along as indented JSON inside the tagged region.
	if !strings.Contains(gw.prompts[0], "<context_blueprint>") {
		t.Errorf("planner prompt missing blueprint region:\n%s", gw.prompts[0])
	}
	if !strings.Contains(gw.prompts[0], `"title": "Add retry budgets"`) {
		t.Errorf("planner prompt missing blueprint data:\n%s", gw.prompts[0])
	}
	if !strings.Contains(gw.systems[0], "presentation designer") {
		t.Errorf("unexpected system prompt:\n%s", gw.systems[0])
	}
}

func TestGenerateRepairsInvalidPlan(t *testing.T) {
	gw := &scriptedGateway{responses: []string{
		`{"presentation_title": "Broken", "slides": []}`,
		`{"presentation_title": "Fixed", "slides": [{"slide_type": "title", "title": "Fixed"}]}`,
	}}

	plan, err := Generate(context.Background(), gw, map[string]any{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if plan.PresentationTitle != "Fixed" {
		t.Errorf("PresentationTitle = %q, want repaired plan", plan.PresentationTitle)
	}
	if len(gw.prompts) != 2 {
		t.Fatalf("expected 2 gateway calls, got %d", len(gw.prompts))
	}

	repair := gw.prompts[1]
	for _, want := range []string{
		"<desired_schema>",
		`"presentation_title"`, // the reflected schema names the fields
		`{"presentation_title": "Broken", "slides": []}`,
		"schema error at slides: at least one slide is required",
	} {
		if !strings.Contains(repair, want) {
			t.Errorf("repair prompt missing %q:\n%s", want, repair)
		}
	}
}
