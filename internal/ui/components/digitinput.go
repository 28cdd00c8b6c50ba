package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// DigitInput is the edit buffer behind the focused worksheet field. It
// accepts only decimal digits; the worksheet renders the value itself.
type DigitInput struct {
	Model     textinput.Model
	MaxDigits int
}

// NewDigitInput creates a focused input limited to maxDigits characters.
func NewDigitInput(maxDigits int) DigitInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return DigitInput{Model: ti, MaxDigits: maxDigits}
}

// Init returns the cursor blink command.
func (d DigitInput) Init() tea.Cmd {
	return d.Model.Focus()
}

// Update forwards editing keys and drops printable non-digits.
func (d DigitInput) Update(msg tea.Msg) (DigitInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	return d, cmd
}

// Value returns the raw text.
func (d DigitInput) Value() string {
	return d.Model.Value()
}

// SetValue replaces the buffer, e.g. when focus lands on a field that was
// already filled in.
func (d *DigitInput) SetValue(s string) {
	d.Model.SetValue(s)
	d.Model.CursorEnd()
}

// Int parses the buffer. ok is false when the buffer is empty.
func (d DigitInput) Int() (n int, ok bool) {
	n, err := strconv.Atoi(d.Model.Value())
	return n, err == nil
}
