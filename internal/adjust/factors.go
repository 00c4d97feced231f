package adjust

import (
	"fmt"

	"github.com/abhisek/questforge/internal/quest"
)

// Adjustment factor table. Each signal is independent and additive;
// the sum is applied to the quest's difficulty and clamped afterwards.
const (
	recentWindow      = 7
	minOverallSamples = 3
	minPatternSamples = 2
	highSuccessRate   = 0.85
	lowSuccessRate    = 0.40
	highPatternRate   = 0.80
	lowPatternRate    = 0.50
	streakFatigueDays = 5
	timePressureFloor = 20
	plateauThreshold  = 0.7

	factorHighSuccess  = 0.15
	factorLowSuccess   = -0.20
	factorHighPattern  = 0.10
	factorLowPattern   = -0.15
	factorStreak       = -0.05
	factorTimePressure = -0.10
	factorFrustrated   = -0.15
	factorConfident    = 0.10
	factorHighRisk     = -0.20
	factorPlateau      = 0.10
)

// firedSignal is one factor that contributed to an adjustment.
type firedSignal struct {
	factor float64
	reason string
	strong bool // strong signals accrue more confidence
}

// computeFactors evaluates every signal for one quest against the
// completion history and today's context.
func computeFactors(q quest.Quest, history []Completion, ctx Context) []firedSignal {
	var fired []firedSignal

	recent := history
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	if len(recent) >= minOverallSamples {
		rate := successRate(recent)
		if rate > highSuccessRate {
			fired = append(fired, firedSignal{factorHighSuccess,
				fmt.Sprintf("recent success rate %.2f above %.2f", rate, highSuccessRate), true})
		} else if rate < lowSuccessRate {
			fired = append(fired, firedSignal{factorLowSuccess,
				fmt.Sprintf("recent success rate %.2f below %.2f", rate, lowSuccessRate), true})
		}
	}

	samePattern := filterPattern(history, q.Pattern)
	if len(samePattern) >= minPatternSamples {
		rate := successRate(samePattern)
		if rate > highPatternRate {
			fired = append(fired, firedSignal{factorHighPattern,
				fmt.Sprintf("%s success rate %.2f above %.2f", q.Pattern, rate, highPatternRate), true})
		} else if rate < lowPatternRate {
			fired = append(fired, firedSignal{factorLowPattern,
				fmt.Sprintf("%s success rate %.2f below %.2f", q.Pattern, rate, lowPatternRate), true})
		}
	}

	if ctx.StreakDays > streakFatigueDays {
		fired = append(fired, firedSignal{factorStreak,
			fmt.Sprintf("streak fatigue after %d consecutive days", ctx.StreakDays), false})
	}

	if ctx.AvailableTime > 0 && ctx.AvailableTime < timePressureFloor {
		fired = append(fired, firedSignal{factorTimePressure,
			fmt.Sprintf("only %d minutes available", ctx.AvailableTime), false})
	}

	if hasMood(ctx.Moods, "frustrated") {
		fired = append(fired, firedSignal{factorFrustrated, "frustrated mood reported", true})
	}
	if hasMood(ctx.Moods, "confident") {
		fired = append(fired, firedSignal{factorConfident, "confident mood reported", true})
	}

	if ctx.Risk.HighSeverity {
		fired = append(fired, firedSignal{factorHighRisk, "high-severity risk factors present", true})
	}
	if ctx.Risk.PlateauRisk > plateauThreshold {
		fired = append(fired, firedSignal{factorPlateau,
			fmt.Sprintf("plateau risk %.2f, introducing variety", ctx.Risk.PlateauRisk), false})
	}

	return fired
}

// confidence starts at 0.7 and accrues per fired signal: +0.15 for
// strong signals, +0.10 for weak ones, capped at 0.95.
func confidence(fired []firedSignal) float64 {
	c := 0.7
	for _, f := range fired {
		if f.strong {
			c += 0.15
		} else {
			c += 0.10
		}
	}
	if c > 0.95 {
		c = 0.95
	}
	return c
}

func successRate(completions []Completion) float64 {
	if len(completions) == 0 {
		return 0
	}
	succeeded := 0
	for _, c := range completions {
		if c.Success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(completions))
}

// averageRating ignores unrated completions. Second return is false
// when nothing was rated.
func averageRating(completions []Completion) (float64, bool) {
	sum, n := 0, 0
	for _, c := range completions {
		if c.Rating > 0 {
			sum += c.Rating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

func filterPattern(completions []Completion, p quest.Pattern) []Completion {
	var out []Completion
	for _, c := range completions {
		if c.Pattern == p {
			out = append(out, c)
		}
	}
	return out
}

func hasMood(moods []string, mood string) bool {
	for _, m := range moods {
		if m == mood {
			return true
		}
	}
	return false
}
