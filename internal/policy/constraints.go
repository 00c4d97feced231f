package policy

import "github.com/abhisek/questforge/internal/quest"

// Constraints is the per-cycle planning envelope derived from the profile
// and today's check-in. It lives for exactly one planning cycle.
type Constraints struct {
	TotalMinutesMax   int
	MaxSessionMinutes int
	MaxQuestCount     int
}

// Defaults for the planning envelope.
const (
	DefaultMaxSessionMinutes = 45
	DefaultMaxQuestCount     = 3

	// MinTotalMinutes floors the derived daily budget.
	MinTotalMinutes = 15
	// MinQuestMinutes floors an individual quest after budget scaling.
	MinQuestMinutes = 15
)

// capacity is the fixed day-type capacity table, in minutes.
var capacity = map[quest.DayType]int{
	quest.DayBusy:   45,
	quest.DayNormal: 90,
	quest.DayDeep:   150,
}

// Capacity returns the base budget for a day type. When no day-type
// signal exists it falls back to a profile-scaled equivalent.
func Capacity(dayType quest.DayType, profile quest.Profile) int {
	if c, ok := capacity[dayType]; ok {
		return c
	}
	c := profile.TimeBudgetPerDay
	if c < MinTotalMinutes {
		c = MinTotalMinutes
	}
	if c > capacity[quest.DayDeep] {
		c = capacity[quest.DayDeep]
	}
	return c
}

// DeriveConstraints computes the cycle envelope: day-type capacity plus
// the check-in delta, floored at MinTotalMinutes.
func DeriveConstraints(profile quest.Profile, dayType quest.DayType, deltaMinutes int) Constraints {
	total := Capacity(dayType, profile) + deltaMinutes
	if total < MinTotalMinutes {
		total = MinTotalMinutes
	}
	return Constraints{
		TotalMinutesMax:   total,
		MaxSessionMinutes: DefaultMaxSessionMinutes,
		MaxQuestCount:     DefaultMaxQuestCount,
	}
}
