package quest

// Quest is a single time-boxed learning task with a completion contract.
// It is a value object: pipeline stages return modified copies and never
// mutate a quest in place.
type Quest struct {
	Title       string   `json:"title"`
	Pattern     Pattern  `json:"pattern"`
	Minutes     int      `json:"minutes"`    // bounded to [10, 90] at validation
	Difficulty  float64  `json:"difficulty"` // 0.0 - 1.0
	Deliverable string   `json:"deliverable"`
	Steps       []string `json:"steps,omitempty"`
	Criteria    []string `json:"criteria,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Completion contract. Missing fields are backfilled by the policy
	// engine from per-pattern templates.
	DoneDefinition string   `json:"done_definition,omitempty"`
	Evidence       []string `json:"evidence,omitempty"`
	AltPlan        string   `json:"alt_plan,omitempty"`
	StopRule       string   `json:"stop_rule,omitempty"`
}

// MinMinutes and MaxMinutes bound a quest's time box.
const (
	MinMinutes = 10
	MaxMinutes = 90
)

// Clone returns a deep copy of q. Slices are copied so the original is
// never aliased by downstream transformations.
func (q Quest) Clone() Quest {
	c := q
	c.Steps = append([]string(nil), q.Steps...)
	c.Criteria = append([]string(nil), q.Criteria...)
	c.Tags = append([]string(nil), q.Tags...)
	c.Evidence = append([]string(nil), q.Evidence...)
	return c
}

// WithPattern returns a copy of q with the pattern replaced.
func (q Quest) WithPattern(p Pattern) Quest {
	c := q.Clone()
	c.Pattern = p
	return c
}

// WithMinutes returns a copy of q with the time box replaced.
func (q Quest) WithMinutes(m int) Quest {
	c := q.Clone()
	c.Minutes = m
	return c
}

// WithDifficulty returns a copy of q with the difficulty replaced.
func (q Quest) WithDifficulty(d float64) Quest {
	c := q.Clone()
	c.Difficulty = d
	return c
}

// HasTag reports whether q carries the given tag.
func (q Quest) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasFullContract reports whether all four completion-contract fields
// are present.
func (q Quest) HasFullContract() bool {
	return q.DoneDefinition != "" && len(q.Evidence) > 0 && q.AltPlan != "" && q.StopRule != ""
}
