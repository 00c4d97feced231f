package candidates

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a learning coach designing small daily quests for a self-directed learner.

Rules:
- Propose quests for the given goal, skill frontier, and day context. Order them most foundational first.
- Each quest must be completable in one sitting and produce a concrete deliverable.
- Match the quest pattern to the skill: concepts suit read_note_q and teach_back, procedures suit build_micro and quiz_drill, habits suit timed_sprint and retrospective.
- Respect the learner's environment constraints: no audio-based patterns when audio is unavailable, no speaking patterns in public spaces, and so on.
- Difficulty is relative to the learner's current level: 0.5 means comfortably challenging, above 0.7 means stretch.
- Titles must be specific and imperative. "Practice Spanish" is too vague; "Shadow a 3-minute podcast segment on ordering food" is right.
- Do not repeat any quest from the "recently planned" list.`

// buildUserMessage constructs the user message from the source Input
// and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s\n", input.Profile.GoalText)
	fmt.Fprintf(&b, "Day type: %s\n", input.Checkin.DayType)
	fmt.Fprintf(&b, "Target difficulty: %.2f\n", input.Difficulty)
	fmt.Fprintf(&b, "Quests wanted: %d\n", input.Count)

	if len(input.Profile.EnvConstraints) > 0 {
		fmt.Fprintf(&b, "Environment constraints: %s\n", strings.Join(input.Profile.EnvConstraints, ", "))
	}
	if len(input.Profile.ModalityPreferences) > 0 {
		fmt.Fprintf(&b, "Preferred modalities: %s\n", strings.Join(input.Profile.ModalityPreferences, ", "))
	}
	if len(input.Profile.DeliverablePreferences) > 0 {
		fmt.Fprintf(&b, "Preferred deliverables: %s\n", strings.Join(input.Profile.DeliverablePreferences, ", "))
	}

	b.WriteString("\nSkill frontier (ready to learn now):\n")
	if len(input.Frontier) == 0 {
		b.WriteString("None mapped yet; work from the goal alone.\n")
	}
	for _, atom := range input.Frontier {
		fmt.Fprintf(&b, "- %s (%s, level %d)", atom.Label, atom.Type, atom.Level)
		if len(atom.SuggestedPatterns) > 0 {
			names := make([]string, len(atom.SuggestedPatterns))
			for i, p := range atom.SuggestedPatterns {
				names[i] = string(p)
			}
			fmt.Fprintf(&b, " [suggested: %s]", strings.Join(names, ", "))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nRecently planned:\n")
	b.WriteString(buildDedup(input.PriorTitles, cfg.MaxPriorTitles))

	return b.String()
}

// buildDedup formats recent quest titles for the prompt, respecting
// the max limit.
func buildDedup(titles []string, max int) string {
	if len(titles) == 0 {
		return "None"
	}

	// Keep only the most recent N titles.
	if max > 0 && len(titles) > max {
		titles = titles[len(titles)-max:]
	}

	var b strings.Builder
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	return strings.TrimRight(b.String(), "\n")
}
