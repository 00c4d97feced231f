package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questforge/internal/quest"
	"github.com/abhisek/questforge/internal/questions"
	"github.com/abhisek/questforge/internal/ui/components"
	"github.com/abhisek/questforge/internal/ui/theme"
)

// CheckinResult is what a completed check-in flow produces.
type CheckinResult struct {
	Checkin quest.Checkin
	// Answers are scored-question answers keyed by profile field.
	Answers map[string]string
	Aborted bool
}

// moodOptions are the selectable moods, in display order.
var moodOptions = []string{"confident", "curious", "tired", "frustrated"}

type checkinStage int

const (
	stageDayType checkinStage = iota
	stageDelta
	stageMoods
	stageQuestions
	stageDone
)

// CheckinModel walks the user through the daily check-in: day type,
// time delta, moods, then the scored profile questions for this cycle.
type CheckinModel struct {
	stage    checkinStage
	dayType  components.Selector
	delta    components.TextInput
	moods    components.Toggles
	selected []questions.Scored
	qIndex   int
	qSelect  components.Selector
	qInput   components.TextInput

	result CheckinResult
}

// NewCheckinModel builds the flow for the given question plan.
func NewCheckinModel(selected []questions.Scored) CheckinModel {
	m := CheckinModel{
		stage:    stageDayType,
		dayType:  components.NewSelector("What kind of day is it?", []string{"busy", "normal", "deep"}),
		delta:    components.NewTextInput("Minutes more (+) or fewer (-) than usual today?", "0", true),
		moods:    components.NewToggles("How are you feeling? (space to toggle, enter to continue)", moodOptions),
		selected: selected,
		result:   CheckinResult{Answers: map[string]string{}},
	}
	m.dayType.Selected = 1 // normal
	return m
}

// Result returns the collected check-in once the flow is done.
func (m CheckinModel) Result() CheckinResult {
	return m.result
}

// Done reports whether the flow has finished or been aborted.
func (m CheckinModel) Done() bool {
	return m.stage == stageDone
}

func (m CheckinModel) Init() tea.Cmd {
	return nil
}

func (m CheckinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			m.result.Aborted = true
			m.stage = stageDone
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.stage {
	case stageDayType:
		m.dayType, cmd = m.dayType.Update(msg)
		if m.dayType.Chosen {
			m.result.Checkin.DayType = quest.DayType(m.dayType.Value())
			m.stage = stageDelta
			cmd = m.delta.Init()
		}
	case stageDelta:
		m.delta, cmd = m.delta.Update(msg)
		if m.delta.Done {
			m.result.Checkin.DeltaMinutes = parseDelta(m.delta.Value())
			m.stage = stageMoods
		}
	case stageMoods:
		m.moods, cmd = m.moods.Update(msg)
		if m.moods.Done {
			m.result.Checkin.Moods = m.moods.Values()
			m.stage = stageQuestions
			cmd = m.enterQuestion()
		}
	case stageQuestions:
		cmd = m.updateQuestion(msg)
	}

	if m.stage == stageQuestions && m.qIndex >= len(m.selected) {
		m.stage = stageDone
		return m, tea.Quit
	}
	if m.stage == stageDone {
		return m, tea.Quit
	}
	return m, cmd
}

// enterQuestion prepares the component for the current question, or
// returns nil when none remain.
func (m *CheckinModel) enterQuestion() tea.Cmd {
	if m.qIndex >= len(m.selected) {
		return nil
	}
	s := m.selected[m.qIndex]
	if s.Form == questions.FormConfirmation {
		prompt := fmt.Sprintf("Still %q? (%s)", s.ConfirmValue, s.Item.Prompt)
		m.qSelect = components.NewSelector(prompt, []string{"yes", "no"})
		return nil
	}
	switch s.Item.Kind {
	case questions.KindFixedChoice:
		m.qSelect = components.NewSelector(s.Item.Prompt, s.Item.Choices)
		return nil
	default:
		m.qInput = components.NewTextInput(s.Item.Prompt, "", false)
		return m.qInput.Init()
	}
}

func (m *CheckinModel) updateQuestion(msg tea.Msg) tea.Cmd {
	if m.qIndex >= len(m.selected) {
		return nil
	}
	s := m.selected[m.qIndex]
	var cmd tea.Cmd

	if s.Form == questions.FormConfirmation || s.Item.Kind == questions.KindFixedChoice {
		m.qSelect, cmd = m.qSelect.Update(msg)
		if !m.qSelect.Chosen {
			return cmd
		}
		answer := m.qSelect.Value()
		if s.Form == questions.FormConfirmation && answer == "yes" {
			answer = s.ConfirmValue
		}
		if !(s.Form == questions.FormConfirmation && answer == "no") {
			m.result.Answers[s.Item.Field] = answer
		}
		m.qIndex++
		return m.enterQuestion()
	}

	m.qInput, cmd = m.qInput.Update(msg)
	if !m.qInput.Done {
		return cmd
	}
	if v := strings.TrimSpace(m.qInput.Value()); v != "" {
		m.result.Answers[s.Item.Field] = v
	}
	m.qIndex++
	return m.enterQuestion()
}

func (m CheckinModel) View() tea.View {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Daily check-in"))
	b.WriteString("\n\n")

	switch m.stage {
	case stageDayType:
		b.WriteString(m.dayType.View())
	case stageDelta:
		b.WriteString(m.delta.View())
	case stageMoods:
		b.WriteString(m.moods.View())
	case stageQuestions:
		if m.qIndex < len(m.selected) {
			s := m.selected[m.qIndex]
			b.WriteString(theme.Hint.Render(fmt.Sprintf("question %d of %d", m.qIndex+1, len(m.selected))))
			b.WriteString("\n\n")
			if s.Form == questions.FormConfirmation || s.Item.Kind == questions.KindFixedChoice {
				b.WriteString(m.qSelect.View())
			} else {
				b.WriteString(m.qInput.View())
			}
		}
	case stageDone:
		b.WriteString(theme.Body.Render("All set."))
		b.WriteString("\n")
	}
	v := tea.NewView("")
	v.SetContent(b.String())
	return v
}

func parseDelta(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
