/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must panics if err is non-nil. Intended for package-level prompt variables
// whose templates are known to be valid:
//
//	var planner = promptbuilder.MustNewPrompt(`Plan slides for {{blueprint}}`)
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt is sugar for Must(NewPrompt(template)).
func MustNewPrompt(template stringLiteral) *Prompt {
	return Must(NewPrompt(template))
}

// MustBindString is sugar for Must(p.BindString(...)).
func (p *Prompt) MustBindString(name string, value stringLiteral) *Prompt {
	return Must(p.BindString(name, value))
}

// MustBindText is sugar for Must(p.BindText(...)).
func (p *Prompt) MustBindText(name, value string) *Prompt {
	return Must(p.BindText(name, value))
}

// MustBindJSON is sugar for Must(p.BindJSON(...)).
func (p *Prompt) MustBindJSON(name string, data any) *Prompt {
	return Must(p.BindJSON(name, data))
}

// MustBindYAML is sugar for Must(p.BindYAML(...)).
func (p *Prompt) MustBindYAML(name string, data any) *Prompt {
	return Must(p.BindYAML(name, data))
}
