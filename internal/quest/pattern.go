package quest

// Pattern is a learning-activity shape. The set is closed: every quest
// carries exactly one pattern, and the diversity and substitution rules
// operate on this enumeration.
type Pattern string

const (
	PatternReadNoteQ      Pattern = "read_note_q"
	PatternFlashcards     Pattern = "flashcards"
	PatternBuildMicro     Pattern = "build_micro"
	PatternShadowing      Pattern = "shadowing"
	PatternTeachBack      Pattern = "teach_back"
	PatternQuizDrill      Pattern = "quiz_drill"
	PatternTimedSprint    Pattern = "timed_sprint"
	PatternReflectCompare Pattern = "reflect_compare"
	PatternDebugFix       Pattern = "debug_fix"
	PatternRetrospective  Pattern = "retrospective"
)

// AllPatterns returns the full pattern enumeration in display order.
func AllPatterns() []Pattern {
	return []Pattern{
		PatternReadNoteQ,
		PatternFlashcards,
		PatternBuildMicro,
		PatternShadowing,
		PatternTeachBack,
		PatternQuizDrill,
		PatternTimedSprint,
		PatternReflectCompare,
		PatternDebugFix,
		PatternRetrospective,
	}
}

// ValidPattern reports whether p is a member of the closed enumeration.
func ValidPattern(p Pattern) bool {
	switch p {
	case PatternReadNoteQ, PatternFlashcards, PatternBuildMicro,
		PatternShadowing, PatternTeachBack, PatternQuizDrill,
		PatternTimedSprint, PatternReflectCompare, PatternDebugFix,
		PatternRetrospective:
		return true
	}
	return false
}

// PatternDisplayName returns a human-readable name for a pattern.
func PatternDisplayName(p Pattern) string {
	switch p {
	case PatternReadNoteQ:
		return "Read & Note Questions"
	case PatternFlashcards:
		return "Flashcards"
	case PatternBuildMicro:
		return "Build Something Small"
	case PatternShadowing:
		return "Shadowing"
	case PatternTeachBack:
		return "Teach It Back"
	case PatternQuizDrill:
		return "Quiz Drill"
	case PatternTimedSprint:
		return "Timed Sprint"
	case PatternReflectCompare:
		return "Reflect & Compare"
	case PatternDebugFix:
		return "Debug & Fix"
	case PatternRetrospective:
		return "Retrospective"
	default:
		return string(p)
	}
}

// alternatives maps each pattern to its substitution candidates in fixed
// preference order. Used both by environment-constraint substitution and
// by the adjacency-diversity pass; the order is part of the contract so
// substitution stays deterministic.
var alternatives = map[Pattern][]Pattern{
	PatternReadNoteQ:      {PatternFlashcards, PatternQuizDrill, PatternReflectCompare},
	PatternFlashcards:     {PatternQuizDrill, PatternReadNoteQ, PatternTimedSprint},
	PatternBuildMicro:     {PatternDebugFix, PatternTimedSprint, PatternReadNoteQ},
	PatternShadowing:      {PatternTeachBack, PatternReadNoteQ, PatternFlashcards},
	PatternTeachBack:      {PatternReflectCompare, PatternReadNoteQ, PatternFlashcards},
	PatternQuizDrill:      {PatternFlashcards, PatternTimedSprint, PatternReadNoteQ},
	PatternTimedSprint:    {PatternQuizDrill, PatternBuildMicro, PatternFlashcards},
	PatternReflectCompare: {PatternRetrospective, PatternReadNoteQ, PatternTeachBack},
	PatternDebugFix:       {PatternBuildMicro, PatternQuizDrill, PatternTimedSprint},
	PatternRetrospective:  {PatternReflectCompare, PatternReadNoteQ, PatternTeachBack},
}

// Alternatives returns the fixed substitution list for a pattern.
// The returned slice must not be mutated.
func Alternatives(p Pattern) []Pattern {
	return alternatives[p]
}

// envInfeasible maps an environment-constraint tag to the patterns it
// rules out. Tags are free text on the profile; only the tags listed
// here have any effect.
var envInfeasible = map[string][]Pattern{
	"no_audio":     {PatternShadowing},
	"no_speaking":  {PatternShadowing, PatternTeachBack},
	"no_computer":  {PatternBuildMicro, PatternDebugFix},
	"commute":      {PatternBuildMicro, PatternDebugFix, PatternTimedSprint},
	"low_energy":   {PatternTimedSprint},
	"public_space": {PatternShadowing, PatternTeachBack},
}

// InfeasiblePatterns returns the patterns ruled out by an environment tag,
// or nil when the tag carries no restriction.
func InfeasiblePatterns(tag string) []Pattern {
	return envInfeasible[tag]
}

// FeasibleUnder reports whether p is usable under every tag in envTags.
func FeasibleUnder(p Pattern, envTags []string) bool {
	for _, tag := range envTags {
		for _, banned := range envInfeasible[tag] {
			if p == banned {
				return false
			}
		}
	}
	return true
}
