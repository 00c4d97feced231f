package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questforge/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with questforge styling.
type TextInput struct {
	Model       textinput.Model
	Prompt      string
	NumericOnly bool
	Done        bool
}

// NewTextInput creates a styled text input.
func NewTextInput(prompt, placeholder string, numericOnly bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	return TextInput{
		Model:       ti,
		Prompt:      prompt,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Numeric inputs drop non-digit keys
// (leading minus allowed for deltas).
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Done {
		return t, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "enter" {
			t.Done = true
			return t, nil
		}
		if t.NumericOnly && len(key) == 1 {
			c := key[0]
			digit := c >= '0' && c <= '9'
			minus := c == '-' && t.Model.Value() == ""
			if !digit && !minus {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and input field.
func (t TextInput) View() string {
	return theme.Body.Bold(true).Render(t.Prompt) + "\n\n  " + t.Model.View() + "\n"
}

// Value returns the entered text.
func (t TextInput) Value() string {
	return t.Model.Value()
}
