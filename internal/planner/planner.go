package planner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/questforge/internal/adjust"
	"github.com/abhisek/questforge/internal/candidates"
	"github.com/abhisek/questforge/internal/policy"
	"github.com/abhisek/questforge/internal/quest"
	"github.com/abhisek/questforge/internal/skillatom"
	"github.com/abhisek/questforge/internal/store"
)

// DefaultUser identifies the single local learner. The adjuster keys
// history per user, so a multi-profile build only needs to vary this.
const DefaultUser = "local"

// candidateOverhead is how many extra candidates to request beyond the
// plan cap, giving substitution and diversity room to drop some.
const candidateOverhead = 2

// Deps wires the planner's collaborators. Source and Adjuster are
// required; the rest degrade gracefully when nil.
type Deps struct {
	Source   candidates.Source
	Adjuster *adjust.Adjuster
	Events   store.EventRepo  // nil: planning events are not recorded
	Graph    *skillatom.Graph // nil: no skill map yet, plan from the goal
	User     string           // empty: DefaultUser

	// DoneAtoms marks skill atoms the learner has finished, keyed by
	// atom ID. Only consulted when Graph is set.
	DoneAtoms map[string]bool
}

// Planner orchestrates one planning cycle: candidates in, a validated
// QuestList out, with difficulty adjustment in between.
type Planner struct {
	deps Deps
}

// New creates a Planner. It panics only on a missing required dep,
// which is a wiring bug, not a runtime condition.
func New(deps Deps) *Planner {
	if deps.Source == nil {
		panic("planner: nil candidate source")
	}
	if deps.Adjuster == nil {
		panic("planner: nil adjuster")
	}
	if deps.User == "" {
		deps.User = DefaultUser
	}
	return &Planner{deps: deps}
}

// PlanDay produces the day's validated quest list. It is total from
// the caller's perspective: upstream failures are absorbed by the
// candidate fallback, and the only returned error is the typed
// insufficient-candidates planning failure (or a cancelled context
// surfaced from the sole suspension point before fallback handled it).
func (p *Planner) PlanDay(ctx context.Context, profile quest.Profile, history []adjust.Completion, checkin quest.Checkin) (*policy.QuestList, error) {
	cons := policy.DeriveConstraints(profile, checkin.DayType, checkin.DeltaMinutes)

	input := candidates.Input{
		Profile:     profile,
		Checkin:     checkin,
		Frontier:    p.frontier(),
		Difficulty:  p.targetDifficulty(ctx, profile),
		Count:       cons.MaxQuestCount + candidateOverhead,
		PriorTitles: priorTitles(history),
	}

	raw, err := p.deps.Source.GenerateCandidates(ctx, input)
	if err != nil {
		// Only a non-resilient source can land here; treat it like an
		// empty day rather than crashing the cycle.
		return nil, fmt.Errorf("candidate source: %w", err)
	}

	adjusted, results := p.deps.Adjuster.Adjust(ctx, p.deps.User, raw, history, adjust.Context{
		AvailableTime: cons.TotalMinutesMax,
		Moods:         checkin.Moods,
		StreakDays:    streakDays(history, today()),
	})
	// Recorded adjustments are the monitor's feed on later runs.
	for _, r := range results {
		if r.Type != adjust.TypeMaintain {
			p.recordAdjustment(ctx, r)
		}
	}

	list, err := policy.Apply(adjusted, profile, checkin.DayType, checkin.DeltaMinutes)
	if err != nil {
		return nil, err
	}

	p.recordPlan(ctx, list, checkin)
	return list, nil
}

// AdjustmentReport is the outcome of one between-cycle monitor pass.
type AdjustmentReport struct {
	Rollbacks       []adjust.Result
	Recommendations []string
	RollbackRate    float64
}

// AdjustForNextCycle runs the rollback monitor over the completion
// history and records any emitted rollback. Total: always returns a
// report.
func (p *Planner) AdjustForNextCycle(ctx context.Context, history []adjust.Completion) (*AdjustmentReport, error) {
	report := p.deps.Adjuster.Monitor(p.deps.User, history)

	for _, rb := range report.Rollbacks {
		p.recordAdjustment(ctx, rb)
	}

	return &AdjustmentReport{
		Rollbacks:       report.Rollbacks,
		Recommendations: report.Recommendations,
		RollbackRate:    p.deps.Adjuster.History().RollbackRate(p.deps.User),
	}, nil
}

// frontier returns the atoms ready to learn, or nil without a graph.
func (p *Planner) frontier() []skillatom.Atom {
	if p.deps.Graph == nil {
		return nil
	}
	return p.deps.Graph.Frontier(p.deps.DoneAtoms)
}

// targetDifficulty resolves the difficulty to request from the source:
// the latest recorded adjustment wins, then the profile's tolerance,
// then a neutral default.
func (p *Planner) targetDifficulty(ctx context.Context, profile quest.Profile) float64 {
	if p.deps.Events != nil {
		latest, err := p.deps.Events.LatestAdjustment(ctx)
		if err == nil && latest != nil {
			return latest.NewDifficulty
		}
	}
	if profile.DifficultyTolerance > 0 {
		return profile.DifficultyTolerance
	}
	return 0.5
}

func (p *Planner) recordPlan(ctx context.Context, list *policy.QuestList, checkin quest.Checkin) {
	if p.deps.Events == nil {
		return
	}
	fallback := false
	for _, q := range list.Quests {
		if q.HasTag("fallback") {
			fallback = true
			break
		}
	}
	err := p.deps.Events.AppendPlan(ctx, store.PlanEventData{
		PlanID:       uuid.New().String(),
		PlanDate:     today(),
		DayType:      string(checkin.DayType),
		TotalMinutes: list.TotalMinutes(),
		QuestCount:   len(list.Quests),
		Quests:       list.Quests,
		Rationale:    list.Rationale,
		FallbackUsed: fallback,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record plan event: %v\n", err)
	}
}

func (p *Planner) recordAdjustment(ctx context.Context, r adjust.Result) {
	if p.deps.Events == nil {
		return
	}
	reasoning := ""
	if len(r.Reasons) > 0 {
		reasoning = r.Reasons[0]
	}
	err := p.deps.Events.AppendAdjustment(ctx, store.AdjustmentEventData{
		QuestTitle:         r.QuestTitle,
		Type:               string(r.Type),
		Magnitude:          string(r.Magnitude),
		PreviousDifficulty: r.OriginalDifficulty,
		NewDifficulty:      r.AdjustedDifficulty,
		Confidence:         r.Confidence,
		Reasoning:          reasoning,
		Rollback:           r.Rollback,
		CompletionMark:     r.CompletionMark,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record adjustment event: %v\n", err)
	}
}

// priorTitles extracts recent quest titles for prompt deduplication.
func priorTitles(history []adjust.Completion) []string {
	titles := make([]string, 0, len(history))
	for _, c := range history {
		titles = append(titles, c.QuestTitle)
	}
	return titles
}

// streakDays counts consecutive active days ending today or yesterday.
func streakDays(history []adjust.Completion, todayDate string) int {
	if len(history) == 0 {
		return 0
	}
	active := make(map[string]bool, len(history))
	for _, c := range history {
		active[c.Date] = true
	}

	day, err := time.Parse("2006-01-02", todayDate)
	if err != nil {
		return 0
	}
	// A streak may end yesterday without being broken yet.
	if !active[todayDate] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
