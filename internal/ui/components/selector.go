package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questforge/internal/ui/theme"
)

// Selector is a single-choice vertical picker.
type Selector struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   bool
}

// NewSelector creates a selector over the given options.
func NewSelector(prompt string, options []string) Selector {
	return Selector{Prompt: prompt, Options: options}
}

// Init returns nil (no initial command).
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if s.Chosen {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.Selected > 0 {
			s.Selected--
		}
	case "down", "j":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	case "enter":
		s.Chosen = true
	}

	return s, nil
}

// View renders the selector.
func (s Selector) View() string {
	out := theme.Body.Bold(true).Render(s.Prompt) + "\n\n"
	for i, opt := range s.Options {
		if i == s.Selected {
			out += theme.Selected.Render("  ▸ "+opt) + "\n"
		} else {
			out += theme.Unselected.Render("    "+opt) + "\n"
		}
	}
	return out
}

// Value returns the chosen option, or "" before selection.
func (s Selector) Value() string {
	if !s.Chosen {
		return ""
	}
	return s.Options[s.Selected]
}
