/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package slidemd

import (
	"fmt"
	"strings"

	"chainguard.dev/prdeck/plan"
	"gopkg.in/yaml.v3"
)

// frontmatter is the per-slide YAML header. Field order is the emission
// order.
type frontmatter struct {
	Theme  string `yaml:"theme,omitempty"`
	Title  string `yaml:"title,omitempty"`
	Layout string `yaml:"layout,omitempty"`
}

// layoutFor maps plan slide types onto built-in Slidev layouts.
func layoutFor(slideType string) string {
	switch slideType {
	case plan.TypeTitle:
		return "cover"
	default:
		return "default"
	}
}

// Render produces the deck without a model: a deterministic, plain
// translation of the plan. It is the fallback when no AI writer is wanted,
// so the output favors predictability over polish.
func Render(p plan.SlidePlan) (string, error) {
	var out strings.Builder

	for i, slide := range p.Slides {
		fm := frontmatter{Layout: layoutFor(slide.SlideType)}
		if i == 0 {
			// The first slide's frontmatter doubles as the deck headmatter.
			fm.Theme = "default"
			fm.Title = p.PresentationTitle
		} else {
			out.WriteString("\n")
		}
		header, err := yaml.Marshal(fm)
		if err != nil {
			return "", fmt.Errorf("rendering slide %d frontmatter: %w", i, err)
		}
		fmt.Fprintf(&out, "---\n%s---\n\n", header)

		fmt.Fprintf(&out, "# %s\n", slide.Title)
		if slide.Subtitle != "" {
			fmt.Fprintf(&out, "\n%s\n", slide.Subtitle)
		}
		if len(slide.Content) > 0 {
			out.WriteString("\n")
			for _, bullet := range slide.Content {
				fmt.Fprintf(&out, "- %s\n", bullet)
			}
		}
		if cb := slide.CodeBlock; cb != nil {
			fmt.Fprintf(&out, "\n```%s\n%s\n```\n", cb.Language, strings.TrimRight(cb.Code, "\n"))
		}
		if slide.SpeakerNotes != "" {
			fmt.Fprintf(&out, "\n<!--\n%s\n-->\n", slide.SpeakerNotes)
		}
	}

	return out.String(), nil
}
