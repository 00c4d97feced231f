package candidates

import "github.com/abhisek/questforge/internal/quest"

// Fallback quest templates, keyed by pattern. These are authored
// content, not part of the algorithmic contract: edit freely. The %s
// placeholder receives the topic (a frontier atom label, or the goal
// text when no skill map exists yet).
type fallbackTemplate struct {
	title       string
	minutes     int
	deliverable string
	steps       []string
	criteria    []string
}

var fallbackTemplates = map[quest.Pattern]fallbackTemplate{
	quest.PatternReadNoteQ: {
		title:       "Read and annotate an introduction to %s",
		minutes:     25,
		deliverable: "One page of notes with three self-test questions",
		steps: []string{
			"Find a short introductory text or chapter on the topic",
			"Read it once without stopping",
			"Re-read and write notes in your own words",
			"Write three questions you could not answer before reading",
		},
		criteria: []string{
			"Notes cover the main ideas without copying sentences",
			"All three questions have written answers",
		},
	},
	quest.PatternFlashcards: {
		title:       "Build and drill a 15-card deck on %s",
		minutes:     20,
		deliverable: "A 15-card flashcard deck with one full review pass",
		steps: []string{
			"Create 15 cards covering the core facts or vocabulary",
			"Run one full review pass",
			"Re-drill every card you missed",
		},
		criteria: []string{
			"Deck has at least 15 cards",
			"Missed cards were repeated until correct",
		},
	},
	quest.PatternBuildMicro: {
		title:       "Build a tiny working example of %s",
		minutes:     40,
		deliverable: "A minimal working artifact you made from scratch",
		steps: []string{
			"Pick the smallest useful version of the idea",
			"Build it without copying a tutorial end to end",
			"Note what you had to look up",
		},
		criteria: []string{
			"The artifact works end to end",
			"Lookup notes list at least two things you learned",
		},
	},
	quest.PatternShadowing: {
		title:       "Shadow a short recording on %s",
		minutes:     20,
		deliverable: "A recording of yourself shadowing the segment",
		steps: []string{
			"Pick a 2-3 minute recording at a comfortable level",
			"Listen once through",
			"Shadow it aloud three times, matching rhythm and intonation",
			"Record your final attempt",
		},
		criteria: []string{
			"Final recording keeps pace with the original",
		},
	},
	quest.PatternTeachBack: {
		title:       "Explain %s aloud as if teaching a beginner",
		minutes:     20,
		deliverable: "A 5-minute spoken explanation, recorded or outlined",
		steps: []string{
			"Outline the explanation in five bullet points",
			"Deliver it aloud without reading the outline",
			"Note where you got stuck",
		},
		criteria: []string{
			"Explanation runs at least three minutes",
			"Stuck points are written down for tomorrow",
		},
	},
	quest.PatternQuizDrill: {
		title:       "Work through a 10-question drill on %s",
		minutes:     25,
		deliverable: "A scored answer sheet with corrections",
		steps: []string{
			"Find or write 10 practice questions",
			"Answer all 10 without references",
			"Score yourself and write corrections for every miss",
		},
		criteria: []string{
			"All 10 questions attempted",
			"Every miss has a written correction",
		},
	},
	quest.PatternTimedSprint: {
		title:       "Do a focused 15-minute sprint on %s",
		minutes:     15,
		deliverable: "Whatever you produced in the sprint, plus a one-line log",
		steps: []string{
			"Set a 15-minute timer",
			"Work on the single hardest exercise you can find",
			"Log one line about what you got done",
		},
		criteria: []string{
			"Timer ran uninterrupted",
			"Log line written",
		},
	},
	quest.PatternReflectCompare: {
		title:       "Compare your recent work on %s against a model example",
		minutes:     25,
		deliverable: "A written list of three concrete differences",
		steps: []string{
			"Pick one piece of your recent work",
			"Find a strong example of the same kind of work",
			"List three specific differences and what to change",
		},
		criteria: []string{
			"All three differences are specific, not vague impressions",
		},
	},
	quest.PatternDebugFix: {
		title:       "Find and fix three weaknesses in your %s work",
		minutes:     35,
		deliverable: "The corrected work plus a note on each fix",
		steps: []string{
			"Review a recent piece of work critically",
			"Mark the three weakest spots",
			"Fix each one and note what the fix was",
		},
		criteria: []string{
			"Three fixes applied and documented",
		},
	},
	quest.PatternRetrospective: {
		title:       "Write a short retrospective on this week's %s practice",
		minutes:     15,
		deliverable: "A half-page retrospective with one change for next week",
		steps: []string{
			"List what you practiced this week",
			"Mark what moved you forward and what didn't",
			"Pick exactly one change for next week",
		},
		criteria: []string{
			"Retrospective names one concrete change",
		},
	},
}

// fallbackRotation orders patterns for topic assignment when the
// frontier suggests nothing. Hands-on patterns first.
var fallbackRotation = []quest.Pattern{
	quest.PatternBuildMicro,
	quest.PatternFlashcards,
	quest.PatternReadNoteQ,
	quest.PatternQuizDrill,
	quest.PatternTeachBack,
	quest.PatternTimedSprint,
	quest.PatternReflectCompare,
	quest.PatternRetrospective,
}
