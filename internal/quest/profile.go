package quest

// KnownField is a profile fact learned from onboarding or prior cycles,
// with how sure we are about it. Confidence drives the question engine's
// info-gain computation and the confirmation-question conversion.
type KnownField struct {
	Value      string
	Confidence float64 // 0.0 - 1.0
}

// Profile captures everything the planner knows about the learner.
// It is immutable for the duration of a planning cycle; enrichment from
// answered questions produces a new Profile for the next cycle.
type Profile struct {
	GoalText               string
	TimeBudgetPerDay       int     // minutes
	PreferredSessionLength int     // minutes
	DifficultyTolerance    float64 // 0.0 - 1.0
	NoveltyPreference      float64 // 0.0 - 1.0
	EnvConstraints         []string
	ModalityPreferences    []string
	DeliverablePreferences []string

	// KnownFields indexes learned facts by question-bank field name,
	// e.g. "session_length", "modality".
	KnownFields map[string]KnownField
}

// Known returns the learned fact for a field, if any.
func (p Profile) Known(field string) (KnownField, bool) {
	f, ok := p.KnownFields[field]
	return f, ok
}

// WithKnown returns a copy of p with one learned fact added or replaced.
func (p Profile) WithKnown(field string, f KnownField) Profile {
	c := p
	c.KnownFields = make(map[string]KnownField, len(p.KnownFields)+1)
	for k, v := range p.KnownFields {
		c.KnownFields[k] = v
	}
	c.KnownFields[field] = f
	return c
}

// DayType is a coarse capacity bucket for a single day.
type DayType string

const (
	DayBusy   DayType = "busy"
	DayNormal DayType = "normal"
	DayDeep   DayType = "deep"
)

// ValidDayType reports whether d is a known bucket.
func ValidDayType(d DayType) bool {
	return d == DayBusy || d == DayNormal || d == DayDeep
}

// Checkin is today's signal from the learner: a day-type bucket, a
// minutes delta on the derived budget, and free-form mood indicators
// consumed by the difficulty adjuster.
type Checkin struct {
	DayType      DayType
	DeltaMinutes int
	Moods        []string
}
