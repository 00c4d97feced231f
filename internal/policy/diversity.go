package policy

import "github.com/abhisek/questforge/internal/quest"

// diversify breaks up adjacent same-pattern quests. It scans left to
// right; when quest[i] repeats quest[i-1]'s pattern it takes the first
// alternative that does not clash with either neighbor and stays
// feasible under the environment constraints. When no such alternative
// exists the repeat stands. Running the pass on an already-diverse list
// is a no-op.
func diversify(quests []quest.Quest, envTags []string, trace *Trace) []quest.Quest {
	for i := 1; i < len(quests); i++ {
		if quests[i].Pattern != quests[i-1].Pattern {
			continue
		}
		var next quest.Pattern
		if i+1 < len(quests) {
			next = quests[i+1].Pattern
		}
		for _, alt := range quest.Alternatives(quests[i].Pattern) {
			if alt == quests[i-1].Pattern || alt == next {
				continue
			}
			if !quest.FeasibleUnder(alt, envTags) {
				continue
			}
			trace.add(StepDiversity, quests[i].Title, "adjacent pattern %q repeated, replaced with %q", quests[i].Pattern, alt)
			quests[i] = quests[i].WithPattern(alt)
			break
		}
	}
	return quests
}
