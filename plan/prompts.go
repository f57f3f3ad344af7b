/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package plan

import "chainguard.dev/prdeck/promptbuilder"

var plannerSystem = promptbuilder.MustNewPrompt(`You are a presentation designer AI. Your task is to transform a detailed JSON object describing a GitHub pull request into a simple, logical slide plan.

<input_format>
You will receive a JSON object with keys like 'pr_summary', 'selected_commits', and 'changes'. The most important part is 'changes.ai_summary'.
</input_format>

<output_format>
Your output MUST be a JSON object with the following structure:
- "presentation_title": A string for the overall presentation title.
- "slides": A list of slide objects.
- Each slide object must have:
- "slide_type": A string ('title', 'content', or 'code').
- "title": A string for the slide's main heading.
- "subtitle": An optional string for the title slide.
- "content": A list of strings for bullet points, or a single string for a code slide description.
- "code_block": An optional object with "language" and "code" for code slides.
- "speaker_notes": An optional string.
</output_format>

<instructions>
1. Use the 'pr_summary' for the 'title' slide.
2. Use the 'ai_summary' sections ('Overview', 'Key Changes', 'Impact') for the main content slides.
3. If the original diff is not too large, you may select a small, representative code snippet for a 'code' slide.
4. Be concise and focus on creating a clear, easy-to-follow presentation flow.
5. Synthesize titles: create polished, human-readable titles for the presentation and the first slide. Base them on the 'pr_summary.title', but rephrase them for a presentation context.
</instructions>`)

var plannerUser = promptbuilder.MustNewPrompt(`Based on the following JSON context blueprint, generate the slide plan.

<context_blueprint>
{{blueprint}}
</context_blueprint>

<slide_plan_json>`)

var fixerSystem = promptbuilder.MustNewPrompt(`You are an expert AI assistant that corrects malformed JSON. The user will provide a desired schema, the broken JSON, and the validation error. Your task is to fix the JSON so it perfectly matches the schema. Only output the raw, corrected JSON, with no other text or formatting.`)

var fixerUser = promptbuilder.MustNewPrompt(`The following JSON is invalid and failed validation. Please fix it.

<desired_schema>
{{desired_schema}}
</desired_schema>

<broken_json>
{{broken_json}}
</broken_json>

<validation_error>
{{validation_error}}
</validation_error>

<fixed_json>`)
