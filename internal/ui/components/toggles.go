package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questforge/internal/ui/theme"
)

// Toggles is a multi-select list: space toggles, enter confirms.
type Toggles struct {
	Prompt  string
	Options []string
	cursor  int
	checked map[int]bool
	Done    bool
}

// NewToggles creates a multi-select over the given options.
func NewToggles(prompt string, options []string) Toggles {
	return Toggles{Prompt: prompt, Options: options, checked: make(map[int]bool)}
}

// Init returns nil (no initial command).
func (t Toggles) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling, and confirmation.
func (t Toggles) Update(msg tea.Msg) (Toggles, tea.Cmd) {
	if t.Done {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.Options)-1 {
			t.cursor++
		}
	case "space":
		t.checked[t.cursor] = !t.checked[t.cursor]
	case "enter":
		t.Done = true
	}

	return t, nil
}

// View renders the toggle list.
func (t Toggles) View() string {
	out := theme.Body.Bold(true).Render(t.Prompt) + "\n"
	out += theme.Hint.Render("space toggles, enter confirms") + "\n\n"

	for i, opt := range t.Options {
		box := "[ ]"
		if t.checked[i] {
			box = "[x]"
		}
		line := "  " + box + " " + opt
		if i == t.cursor && !t.Done {
			out += theme.Selected.Render("▸"+line[1:]) + "\n"
		} else {
			out += theme.Unselected.Render(line) + "\n"
		}
	}
	return out
}

// Values returns the checked options in display order.
func (t Toggles) Values() []string {
	var out []string
	for i, opt := range t.Options {
		if t.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}
