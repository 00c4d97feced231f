package candidates

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/questforge/internal/quest"
)

// FallbackSource generates candidates deterministically from the
// profile and skill frontier alone, with no external calls. It backs
// the LLM source when the provider is unavailable or returns garbage,
// so the planner can always produce a valid day.
type FallbackSource struct{}

// NewFallback creates a FallbackSource.
func NewFallback() *FallbackSource {
	return &FallbackSource{}
}

// GenerateCandidates builds input.Count quests from templates. Pattern
// choice prefers the frontier's suggestions, skips patterns infeasible
// under the profile's environment constraints, and avoids immediate
// repeats. Output is fully determined by the input.
func (f *FallbackSource) GenerateCandidates(_ context.Context, input Input) ([]quest.Quest, error) {
	count := input.Count
	if count <= 0 {
		count = 3
	}

	patterns := f.pickPatterns(input, count)
	topics := f.pickTopics(input, count)

	quests := make([]quest.Quest, 0, count)
	for i := 0; i < count; i++ {
		tmpl := fallbackTemplates[patterns[i]]
		q := quest.Quest{
			Title:       fmt.Sprintf(tmpl.title, topics[i]),
			Pattern:     patterns[i],
			Minutes:     tmpl.minutes,
			Difficulty:  input.Difficulty,
			Deliverable: tmpl.deliverable,
			Steps:       append([]string(nil), tmpl.steps...),
			Criteria:    append([]string(nil), tmpl.criteria...),
			Tags:        []string{"fallback"},
		}
		quests = append(quests, q)
	}
	return quests, nil
}

// pickPatterns selects count patterns: frontier suggestions first,
// then the default rotation, filtering infeasible patterns and
// adjacent duplicates.
func (f *FallbackSource) pickPatterns(input Input, count int) []quest.Pattern {
	var pool []quest.Pattern
	seen := make(map[quest.Pattern]bool)

	add := func(p quest.Pattern) {
		if seen[p] || !quest.FeasibleUnder(p, input.Profile.EnvConstraints) {
			return
		}
		seen[p] = true
		pool = append(pool, p)
	}

	for _, atom := range input.Frontier {
		for _, p := range atom.SuggestedPatterns {
			add(p)
		}
	}
	for _, p := range fallbackRotation {
		add(p)
	}

	// Every rotation pattern infeasible only happens with contradictory
	// constraints; retrospective is always writable.
	if len(pool) == 0 {
		pool = []quest.Pattern{quest.PatternRetrospective}
	}

	picked := make([]quest.Pattern, count)
	for i := 0; i < count; i++ {
		picked[i] = pool[i%len(pool)]
	}
	return picked
}

// pickTopics assigns a topic string per quest: frontier atom labels in
// order, then the goal text.
func (f *FallbackSource) pickTopics(input Input, count int) []string {
	goal := strings.TrimSpace(input.Profile.GoalText)
	if goal == "" {
		goal = "your learning goal"
	}

	topics := make([]string, count)
	for i := 0; i < count; i++ {
		if i < len(input.Frontier) {
			topics[i] = input.Frontier[i].Label
		} else {
			topics[i] = goal
		}
	}
	return topics
}
