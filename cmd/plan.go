package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/questforge/internal/adjust"
	"github.com/abhisek/questforge/internal/candidates"
	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/planner"
	"github.com/abhisek/questforge/internal/policy"
	"github.com/abhisek/questforge/internal/quest"
	"github.com/abhisek/questforge/internal/questions"
	"github.com/abhisek/questforge/internal/skillatom"
	"github.com/abhisek/questforge/internal/store"
	"github.com/abhisek/questforge/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan today's quests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd)
	},
}

func init() {
	planCmd.Flags().String("goal", "", "Learning goal (required on first run)")
	planCmd.Flags().String("day", "", "Skip the check-in: day type (busy, normal, deep)")
	planCmd.Flags().Int("delta", 0, "Minutes more/fewer than usual (with --day)")
	planCmd.Flags().StringSlice("mood", nil, "Mood indicators (with --day)")
	planCmd.Flags().Bool("explain", false, "Print the full rationale trace")

	// The root command runs the same flow; share the flags.
	rootCmd.Flags().AddFlagSet(planCmd.Flags())
}

func runPlan(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profile, err := loadProfile(ctx, cmd, st)
	if err != nil {
		return err
	}

	// The LLM provider is optional; everything below degrades to the
	// deterministic fallback path without it.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Planning from built-in templates.")
		provider = nil
	}

	hints := clarityHints(ctx, provider, profile)
	qplan := questions.Plan(questions.DefaultBank(), profile.GoalText, profile, questions.DefaultBudget, hints)

	checkin, answers, err := collectCheckin(cmd, qplan.Selected)
	if err != nil {
		return err
	}
	if checkin == nil {
		return nil // aborted
	}
	profile = enrichProfile(profile, answers)

	list, difficulty, err := planDay(ctx, st, provider, profile, *checkin)
	if err != nil {
		var insufficient *policy.InsufficientCandidatesError
		if errors.As(err, &insufficient) {
			fmt.Println("Not enough workable quests survived today's constraints.")
			fmt.Println("Try again with a larger time budget, or loosen the check-in delta.")
			return nil
		}
		return err
	}

	explain, _ := cmd.Flags().GetBool("explain")
	renderPlan(list, explain)

	saveSnapshot(ctx, st, profile, difficulty)
	return nil
}

// loadProfile restores the learner profile from the latest snapshot,
// applying a --goal override. First runs must pass --goal.
func loadProfile(ctx context.Context, cmd *cobra.Command, st *store.Store) (quest.Profile, error) {
	var profile quest.Profile

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return profile, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		profile = snap.Data.Profile
	}

	if goal, _ := cmd.Flags().GetString("goal"); goal != "" {
		profile.GoalText = goal
	}
	if profile.GoalText == "" {
		return profile, errors.New(`no learning goal yet: run with --goal "what you want to learn"`)
	}
	return profile, nil
}

// clarityHints runs the goal clarity check when a provider is
// available. Failures degrade to no hints; the check is advisory.
func clarityHints(ctx context.Context, provider llm.Provider, profile quest.Profile) *questions.PriorityHints {
	if provider == nil {
		return nil
	}
	checker := questions.NewClarityChecker(provider, questions.DefaultBank())
	report, err := checker.Check(ctx, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: clarity check failed: %v\n", err)
		return nil
	}
	if report.Score < questions.ClarityThreshold && len(report.Issues) > 0 {
		fmt.Println("Your goal could be sharper:")
		for _, issue := range report.Issues {
			fmt.Printf("  - %s\n", issue)
		}
		fmt.Println()
	}
	return report.Hints
}

// collectCheckin gathers today's check-in, either from flags
// (--day, --delta, --mood) or interactively. A nil Checkin with nil
// error means the user aborted the interactive flow.
func collectCheckin(cmd *cobra.Command, selected []questions.Scored) (*quest.Checkin, map[string]string, error) {
	if day, _ := cmd.Flags().GetString("day"); day != "" {
		dt := quest.DayType(day)
		if !quest.ValidDayType(dt) {
			return nil, nil, fmt.Errorf("invalid day type %q: must be busy, normal, or deep", day)
		}
		delta, _ := cmd.Flags().GetInt("delta")
		moods, _ := cmd.Flags().GetStringSlice("mood")
		return &quest.Checkin{DayType: dt, DeltaMinutes: delta, Moods: moods}, nil, nil
	}

	p := tea.NewProgram(ui.NewCheckinModel(selected))
	final, err := p.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("check-in: %w", err)
	}
	model, ok := final.(ui.CheckinModel)
	if !ok {
		return nil, nil, errors.New("check-in: unexpected model type")
	}
	result := model.Result()
	if result.Aborted {
		return nil, nil, nil
	}
	return &result.Checkin, result.Answers, nil
}

// enrichProfile folds check-in answers into the profile: every answer
// becomes a known field, and the ones with structural meaning also set
// their typed counterpart.
func enrichProfile(profile quest.Profile, answers map[string]string) quest.Profile {
	for field, value := range answers {
		profile = profile.WithKnown(field, quest.KnownField{Value: value, Confidence: 0.9})

		switch field {
		case "time_budget":
			if n, err := strconv.Atoi(strings.TrimSuffix(value, "+")); err == nil {
				profile.TimeBudgetPerDay = n
			}
		case "difficulty_tolerance":
			switch value {
			case "push through":
				profile.DifficultyTolerance = 0.7
			case "ease off":
				profile.DifficultyTolerance = 0.3
			}
		case "env_audio":
			if value == "no" {
				profile = addEnvConstraint(profile, "no_audio")
			}
		case "env_device":
			if value == "phone only" {
				profile = addEnvConstraint(profile, "no_computer")
			}
		case "modality":
			if value != "mixed" {
				profile.ModalityPreferences = []string{value}
			}
		}
	}
	return profile
}

func addEnvConstraint(profile quest.Profile, tag string) quest.Profile {
	for _, c := range profile.EnvConstraints {
		if c == tag {
			return profile
		}
	}
	profile.EnvConstraints = append(profile.EnvConstraints, tag)
	return profile
}

// planDay assembles the planning dependencies and runs one cycle.
// It returns the final list and the difficulty to snapshot.
func planDay(ctx context.Context, st *store.Store, provider llm.Provider, profile quest.Profile, checkin quest.Checkin) (*policy.QuestList, float64, error) {
	events := st.EventRepo()

	var source candidates.Source = candidates.NewFallback()
	var risk adjust.RiskAnalyzer
	var graph *skillatom.Graph

	if provider != nil {
		source = candidates.NewResilient(candidates.New(provider, candidates.DefaultConfig()), candidates.NewFallback())
		risk = adjust.NewLLMRisk(provider)

		g, err := skillatom.NewMapper(provider).BuildGraph(ctx, profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skill map unavailable: %v\n", err)
		} else {
			graph = g
		}
	}

	adjuster := adjust.New(risk)
	seedAdjusterHistory(ctx, events, adjuster)

	history, err := loadCompletions(ctx, events)
	if err != nil {
		return nil, 0, err
	}

	pl := planner.New(planner.Deps{
		Source:   source,
		Adjuster: adjuster,
		Events:   events,
		Graph:    graph,
	})

	list, err := pl.PlanDay(ctx, profile, history, checkin)
	if err != nil {
		return nil, 0, err
	}

	difficulty := profile.DifficultyTolerance
	if len(list.Quests) > 0 {
		sum := 0.0
		for _, q := range list.Quests {
			sum += q.Difficulty
		}
		difficulty = sum / float64(len(list.Quests))
	}
	return list, difficulty, nil
}

// seedAdjusterHistory restores the adjuster's ring buffer from stored
// adjustment events so rollback gating survives process restarts.
func seedAdjusterHistory(ctx context.Context, events store.EventRepo, adjuster *adjust.Adjuster) {
	records, err := events.QueryAdjustments(ctx, store.QueryOpts{Limit: 20})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load adjustment history: %v\n", err)
		return
	}

	// Query order is newest first; the ring wants oldest first.
	results := make([]adjust.Result, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		results = append(results, adjustResultFromRecord(records[i]))
	}
	adjuster.History().Seed(planner.DefaultUser, results)
}

func adjustResultFromRecord(r store.AdjustmentRecord) adjust.Result {
	var reasons []string
	if r.Reasoning != "" {
		reasons = []string{r.Reasoning}
	}
	return adjust.Result{
		QuestTitle:         r.QuestTitle,
		Type:               adjust.Type(r.Type),
		Magnitude:          adjust.Magnitude(r.Magnitude),
		OriginalDifficulty: r.PreviousDifficulty,
		AdjustedDifficulty: r.NewDifficulty,
		Confidence:         r.Confidence,
		Reasons:            reasons,
		Rollback:           r.Rollback,
		AppliedAt:          r.Timestamp,
		CompletionMark:     r.CompletionMark,
	}
}

// loadCompletions converts stored completion events into the
// adjuster's history feed, oldest first.
func loadCompletions(ctx context.Context, events store.EventRepo) ([]adjust.Completion, error) {
	records, err := events.CompletionsSince(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	history := make([]adjust.Completion, 0, len(records))
	for _, r := range records {
		history = append(history, adjust.Completion{
			QuestTitle:   r.QuestTitle,
			Pattern:      quest.Pattern(r.Pattern),
			Success:      r.Completed,
			Rating:       r.Rating,
			MinutesSpent: r.ActualMinutes,
			Date:         r.PlanDate,
		})
	}
	return history, nil
}

func renderPlan(list *policy.QuestList, explain bool) {
	fmt.Printf("Today's plan — %d quests, %d of %d minutes\n",
		len(list.Quests), list.TotalMinutes(), list.Constraints.TotalMinutesMax)
	fmt.Println(strings.Repeat("─", 60))

	for i, q := range list.Quests {
		fmt.Printf("%d. %s\n", i+1, q.Title)
		fmt.Printf("   %s · %d min · difficulty %.2f\n", q.Pattern, q.Minutes, q.Difficulty)
		fmt.Printf("   Deliverable: %s\n", q.Deliverable)
		for _, step := range q.Steps {
			fmt.Printf("     - %s\n", step)
		}
		if len(q.Criteria) > 0 {
			fmt.Printf("   Done when: %s\n", strings.Join(q.Criteria, "; "))
		}
		fmt.Println()
	}

	if list.Rubric.SubThreshold {
		fmt.Println("Note: today's plan is below the usual quality bar; treat it as a best effort.")
	}

	if explain {
		fmt.Println("Rationale")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range list.Rationale {
			if e.Quest != "" {
				fmt.Printf("[%s] %s: %s\n", e.Step, e.Quest, e.Detail)
			} else {
				fmt.Printf("[%s] %s\n", e.Step, e.Detail)
			}
		}
	}
}

func saveSnapshot(ctx context.Context, st *store.Store, profile quest.Profile, difficulty float64) {
	repo := st.SnapshotRepo()
	err := repo.Save(ctx, &store.Snapshot{
		Data: store.SnapshotData{
			Version:    1,
			Profile:    profile,
			Difficulty: difficulty,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
		return
	}
	if err := repo.Prune(ctx, 10); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune snapshots: %v\n", err)
	}
}
