package policy

import (
	"math"

	"github.com/abhisek/questforge/internal/quest"
)

// reconcileTotal scales quest minutes so their sum does not exceed
// target. When scaling is needed, every quest is scaled by the same
// factor, re-floored at MinQuestMinutes, and the rounding residual is
// settled on the largest quest (when over) or the first quest (when
// under) so the final sum equals target exactly.
func reconcileTotal(quests []quest.Quest, target int, trace *Trace) []quest.Quest {
	sum := 0
	for _, q := range quests {
		sum += q.Minutes
	}
	if sum <= target || sum == 0 {
		return quests
	}

	factor := float64(target) / float64(sum)
	out := make([]quest.Quest, len(quests))
	scaled := 0
	for i, q := range quests {
		m := int(math.Round(float64(q.Minutes) * factor))
		if m < MinQuestMinutes {
			m = MinQuestMinutes
		}
		out[i] = q.WithMinutes(m)
		scaled += m
	}
	trace.add(StepReconcile, "", "total %d min over budget %d, scaled by %.2f", sum, target, factor)

	// Settle rounding drift so the sum lands exactly on target.
	switch {
	case scaled > target:
		out = shaveExcess(out, scaled-target, trace)
	case scaled < target:
		out[0] = out[0].WithMinutes(out[0].Minutes + (target - scaled))
		trace.add(StepReconcile, out[0].Title, "added %d min residual to first quest", target-scaled)
	}
	return out
}

// shaveExcess removes excess minutes from the largest quests first,
// never pushing a quest below the absolute minimum time box. When the
// per-quest floors make the target unreachable, trailing quests are
// dropped instead. A tight budget never becomes a crash.
func shaveExcess(quests []quest.Quest, excess int, trace *Trace) []quest.Quest {
	for excess > 0 {
		li := largestIndex(quests)
		room := quests[li].Minutes - quest.MinMinutes
		if room <= 0 {
			break
		}
		take := excess
		if take > room {
			take = room
		}
		quests[li] = quests[li].WithMinutes(quests[li].Minutes - take)
		trace.add(StepReconcile, quests[li].Title, "removed %d min residual from largest quest", take)
		excess -= take
	}
	for excess > 0 && len(quests) > 1 {
		last := quests[len(quests)-1]
		quests = quests[:len(quests)-1]
		excess -= last.Minutes
		trace.add(StepReconcile, last.Title, "dropped: budget too small for every quest's minimum time box")
	}
	return quests
}

// largestIndex returns the index of the quest with the most minutes,
// earliest on ties.
func largestIndex(quests []quest.Quest) int {
	li := 0
	for i, q := range quests {
		if q.Minutes > quests[li].Minutes {
			li = i
		}
	}
	return li
}
