package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/questforge/internal/quest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendCompletion(ctx, CompletionEventData{
		PlanDate:       "2026-03-01",
		QuestTitle:     "Flashcard run",
		Pattern:        "flashcards",
		Difficulty:     0.5,
		PlannedMinutes: 20,
		Completed:      true,
	}); err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendAdjustment(ctx, AdjustmentEventData{
		Type:               "increase",
		Magnitude:          "small",
		PreviousDifficulty: 0.5,
		NewDifficulty:      0.55,
		Confidence:         0.8,
	}); err != nil {
		t.Fatalf("append adjustment: %v", err)
	}

	completions, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}
	adjustments, err := repo.QueryAdjustments(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query adjustments: %v", err)
	}
	if len(completions) != 1 || len(adjustments) != 1 {
		t.Fatalf("got %d completions, %d adjustments, want 1 each", len(completions), len(adjustments))
	}
	if adjustments[0].Sequence <= completions[0].Sequence {
		t.Errorf("adjustment seq %d should follow completion seq %d",
			adjustments[0].Sequence, completions[0].Sequence)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "daily_quests", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "daily_quests", InputTokens: 120, OutputTokens: 60, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "skill_map", InputTokens: 200, OutputTokens: 80, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "skill_map" {
		t.Errorf("first record purpose = %q, want skill_map", records[0].Purpose)
	}

	rec, err := repo.GetLLMEvent(ctx, records[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.ErrorMessage != "rate limited" {
		t.Errorf("get by sequence returned %+v", rec)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing sequence")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "daily_quests", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "daily_quests", InputTokens: 100, OutputTokens: 50, Success: false},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "skill_map", InputTokens: 30, OutputTokens: 10, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}
	// Sorted by purpose: daily_quests before skill_map.
	dq := stats[0]
	if dq.Purpose != "daily_quests" || dq.Requests != 2 || dq.Failures != 1 {
		t.Errorf("daily_quests stats = %+v", dq)
	}
	if dq.InputTokens != 200 || dq.OutputTokens != 100 {
		t.Errorf("daily_quests tokens = %d/%d, want 200/100", dq.InputTokens, dq.OutputTokens)
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d models, want 2", len(usage))
	}
	if usage[0].Provider != "anthropic" || usage[0].Requests != 2 {
		t.Errorf("first model usage = %+v", usage[0])
	}
}

func TestAppendAndQueryPlans(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	quests := []quest.Quest{
		{Title: "Drill irregular verbs", Pattern: quest.PatternFlashcards, Minutes: 20, Difficulty: 0.5},
		{Title: "Build a tiny CLI", Pattern: quest.PatternBuildMicro, Minutes: 40, Difficulty: 0.6},
	}
	err := repo.AppendPlan(ctx, PlanEventData{
		PlanID:       "plan-2026-03-01",
		PlanDate:     "2026-03-01",
		DayType:      "normal",
		TotalMinutes: 60,
		QuestCount:   2,
		Quests:       quests,
	})
	if err != nil {
		t.Fatalf("append plan: %v", err)
	}

	rec, err := repo.PlanForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("plan for date: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a plan record")
	}
	if rec.TotalMinutes != 60 || rec.QuestCount != 2 {
		t.Errorf("record = %+v", rec)
	}
	if rec.PlanID != "plan-2026-03-01" {
		t.Errorf("PlanID = %q", rec.PlanID)
	}
	if len(rec.Quests) != 2 {
		t.Fatalf("got %d stored quests, want 2", len(rec.Quests))
	}

	none, err := repo.PlanForDate(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("plan for missing date: %v", err)
	}
	if none != nil {
		t.Error("expected nil for date with no plan")
	}
}

func TestCompletionsSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendCompletion(ctx, CompletionEventData{
			PlanDate:       "2026-03-01",
			QuestTitle:     "Quest",
			Pattern:        "quiz_drill",
			Difficulty:     0.5,
			PlannedMinutes: 15,
			Completed:      i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.CompletionsSince(ctx, 0)
	if err != nil {
		t.Fatalf("since 0: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d completions, want 4", len(all))
	}
	// Oldest first.
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Fatalf("completions not in ascending sequence order: %d then %d",
				all[i-1].Sequence, all[i].Sequence)
		}
	}

	later, err := repo.CompletionsSince(ctx, all[1].Sequence)
	if err != nil {
		t.Fatalf("since %d: %v", all[1].Sequence, err)
	}
	if len(later) != 2 {
		t.Errorf("got %d completions after seq %d, want 2", len(later), all[1].Sequence)
	}
}

func TestLatestAdjustment(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	latest, err := repo.LatestAdjustment(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil when no adjustments exist")
	}

	for _, typ := range []string{"increase", "decrease"} {
		err := repo.AppendAdjustment(ctx, AdjustmentEventData{
			Type:               typ,
			Magnitude:          "small",
			PreviousDifficulty: 0.5,
			NewDifficulty:      0.55,
			Confidence:         0.7,
		})
		if err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	latest, err = repo.LatestAdjustment(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Type != "decrease" {
		t.Errorf("latest = %+v, want decrease", latest)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:    1,
			Profile:    quest.Profile{GoalText: "conversational Spanish", TimeBudgetPerDay: 45},
			Difficulty: 0.55,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Profile.GoalText != "conversational Spanish" {
		t.Errorf("profile goal = %q", snap.Data.Profile.GoalText)
	}
	if snap.Data.Difficulty != 0.55 {
		t.Errorf("difficulty = %v, want 0.55", snap.Data.Difficulty)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
