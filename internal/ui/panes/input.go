package panes

import (
	"charm.land/bubbles/v2/textinput"

	"github.com/zhubert/stave/internal/keys"
)

// prompt is a single-line text input that captures every key while focused.
type prompt struct {
	input textinput.Model
}

func newPrompt(label, placeholder string) prompt {
	in := textinput.New()
	in.Prompt = label
	in.Placeholder = placeholder
	return prompt{input: in}
}

// promptResult is what a key press did to a focused prompt.
type promptResult int

const (
	promptEdited promptResult = iota
	promptSubmitted
	promptCancelled
)

func (p *prompt) focused() bool {
	return p.input.Focused()
}

func (p *prompt) focus() {
	p.input.Focus()
}

func (p *prompt) value() string {
	return p.input.Value()
}

// handle feeds a key press to the focused input. Enter submits and escape
// cancels; everything else edits the text.
func (p *prompt) handle(ev *KeyEvent) promptResult {
	ev.Consume()
	switch ev.Key.String() {
	case keys.Enter:
		p.input.Blur()
		return promptSubmitted
	case keys.Escape:
		p.input.Blur()
		return promptCancelled
	}
	p.input, _ = p.input.Update(ev.Key)
	return promptEdited
}

func (p *prompt) clear() {
	p.input.Reset()
	p.input.Blur()
}

func (p *prompt) view(width int) string {
	p.input.SetWidth(max(width-len(p.input.Prompt)-1, 1))
	return p.input.View()
}
