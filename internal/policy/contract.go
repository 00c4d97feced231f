package policy

import (
	"fmt"

	"github.com/abhisek/questforge/internal/quest"
)

// contractTemplate synthesizes the completion-contract fields for one
// pattern. Templates are deliberately plain content: they are replaceable
// data, not part of the pipeline's behavior.
type contractTemplate struct {
	doneDefinition string // fmt with minutes
	evidence       []string
	altPlan        string
	stopRule       string
	deliverable    string
	steps          []string
}

var contractTemplates = map[quest.Pattern]contractTemplate{
	quest.PatternReadNoteQ: {
		doneDefinition: "Read the material and write at least 3 questions it raised, within %d minutes",
		evidence:       []string{"written questions", "one-line summary"},
		altPlan:        "If the material is too dense, read only the introduction and summarize it",
		stopRule:       "Stop when the time box ends, even mid-section",
		deliverable:    "a note with questions",
		steps:          []string{"Skim the material once", "Read closely and mark unclear parts", "Write questions for each marked part"},
	},
	quest.PatternFlashcards: {
		doneDefinition: "Review the full deck once and re-test misses, within %d minutes",
		evidence:       []string{"count of cards reviewed", "list of missed cards"},
		altPlan:        "If the deck is too large, review only cards missed last time",
		stopRule:       "Stop after two passes regardless of remaining misses",
		deliverable:    "an updated deck",
		steps:          []string{"Shuffle the deck", "Review each card and sort into hit/miss", "Re-test the miss pile"},
	},
	quest.PatternBuildMicro: {
		doneDefinition: "Produce a tiny working artifact exercising the concept, within %d minutes",
		evidence:       []string{"the artifact itself", "a note on what broke"},
		altPlan:        "If blocked, reduce scope to the smallest runnable slice",
		stopRule:       "Stop at the time box; an unfinished artifact still counts",
		deliverable:    "a micro build",
		steps:          []string{"Pick the smallest useful scope", "Build it end to end", "Note what was harder than expected"},
	},
	quest.PatternShadowing: {
		doneDefinition: "Shadow the source aloud for the full time box of %d minutes",
		evidence:       []string{"recording or self-rating", "list of stumbling points"},
		altPlan:        "If audio is unavailable, switch to silent mouthing with the transcript",
		stopRule:       "Stop at the time box or after three passes of the same segment",
		deliverable:    "a practiced segment",
		steps:          []string{"Pick a short segment", "Listen once without speaking", "Shadow in sync, repeating hard spots"},
	},
	quest.PatternTeachBack: {
		doneDefinition: "Explain the topic out loud as if teaching, within %d minutes",
		evidence:       []string{"outline used", "gaps noticed while explaining"},
		altPlan:        "If speaking is not possible, write the explanation instead",
		stopRule:       "Stop when the explanation loops without adding anything",
		deliverable:    "a teach-back outline",
		steps:          []string{"Outline the key points", "Explain without looking at notes", "Write down every gap you hit"},
	},
	quest.PatternQuizDrill: {
		doneDefinition: "Answer a set of practice questions and check them, within %d minutes",
		evidence:       []string{"score", "list of wrong answers"},
		altPlan:        "If no quiz exists, turn section headings into questions first",
		stopRule:       "Stop at the time box even with questions remaining",
		deliverable:    "a scored quiz",
		steps:          []string{"Collect or generate questions", "Answer without references", "Check and record misses"},
	},
	quest.PatternTimedSprint: {
		doneDefinition: "Complete as many reps as possible in a strict %d-minute window",
		evidence:       []string{"rep count", "error count"},
		altPlan:        "If energy is low, halve the window and the target",
		stopRule:       "Hard stop at the timer; never extend a sprint",
		deliverable:    "a sprint log entry",
		steps:          []string{"Set a visible timer", "Work without interruptions", "Log the count immediately"},
	},
	quest.PatternReflectCompare: {
		doneDefinition: "Compare today's attempt with a reference and note differences, within %d minutes",
		evidence:       []string{"written comparison", "one improvement to try next"},
		altPlan:        "If no reference exists, compare against your own earlier attempt",
		stopRule:       "Stop after noting three differences",
		deliverable:    "a comparison note",
		steps:          []string{"Line up your attempt and the reference", "Mark concrete differences", "Pick one difference to work on next"},
	},
	quest.PatternDebugFix: {
		doneDefinition: "Reproduce, isolate, and fix one defect, within %d minutes",
		evidence:       []string{"the failing case", "the fix or a hypothesis"},
		altPlan:        "If the defect resists isolation, document a minimal repro instead",
		stopRule:       "Stop at the time box and write down the current hypothesis",
		deliverable:    "a fixed or documented defect",
		steps:          []string{"Reproduce the failure", "Narrow to the smallest failing case", "Fix and re-run"},
	},
	quest.PatternRetrospective: {
		doneDefinition: "Review the recent period and write what to keep/change, within %d minutes",
		evidence:       []string{"keep/change list", "one concrete adjustment"},
		altPlan:        "If the period is too thin, review the last week instead",
		stopRule:       "Stop after one keep and one change are written",
		deliverable:    "a retrospective note",
		steps:          []string{"List what happened", "Mark what helped and what did not", "Choose one adjustment"},
	},
}

// backfillContract fills any missing completion-contract fields on q from
// its pattern template, parameterized by the quest's minutes. Present
// fields are never overwritten. The returned bool reports whether any
// field was synthesized.
func backfillContract(q quest.Quest) (quest.Quest, bool) {
	tpl, ok := contractTemplates[q.Pattern]
	if !ok {
		return q, false
	}
	c := q.Clone()
	changed := false
	if c.DoneDefinition == "" {
		c.DoneDefinition = fmt.Sprintf(tpl.doneDefinition, c.Minutes)
		changed = true
	}
	if len(c.Evidence) == 0 {
		c.Evidence = append([]string(nil), tpl.evidence...)
		changed = true
	}
	if c.AltPlan == "" {
		c.AltPlan = tpl.altPlan
		changed = true
	}
	if c.StopRule == "" {
		c.StopRule = tpl.stopRule
		changed = true
	}
	return c, changed
}

// templateDeliverable returns the pattern's default deliverable label.
func templateDeliverable(p quest.Pattern) string {
	return contractTemplates[p].deliverable
}

// templateSteps returns a copy of the pattern's default step list.
func templateSteps(p quest.Pattern) []string {
	return append([]string(nil), contractTemplates[p].steps...)
}
