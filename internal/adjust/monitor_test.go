package adjust

import (
	"context"
	"testing"

	"github.com/abhisek/questforge/internal/quest"
)

// adjustOnce runs one increase adjustment against the given prior
// history and returns the adjuster for monitoring.
func adjustOnce(t *testing.T, prior []Completion) *Adjuster {
	t.Helper()
	a := New(nil)
	_, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, prior, Context{})
	if results[0].Type != TypeIncrease {
		t.Fatalf("setup: type = %q, want increase", results[0].Type)
	}
	return a
}

func TestMonitor_GatedUntilThreeCompletions(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)

	// Two completions after the adjustment: not enough.
	after := append(prior, failures(2, quest.PatternFlashcards)...)
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 0 {
		t.Fatalf("got %d rollbacks with only 2 subsequent completions, want 0", len(report.Rollbacks))
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected a waiting recommendation")
	}
}

func TestMonitor_RollsBackFailedIncrease(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)

	after := append(prior, failures(3, quest.PatternFlashcards)...)
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 1 {
		t.Fatalf("got %d rollbacks, want 1", len(report.Rollbacks))
	}

	rb := report.Rollbacks[0]
	if rb.Type != TypeDecrease {
		t.Errorf("rollback type = %q, want inverted decrease", rb.Type)
	}
	if !rb.Rollback {
		t.Error("rollback flag not set")
	}
	if len(rb.Reasons) == 0 || rb.Reasons[0][:9] != "rollback:" {
		t.Errorf("rollback reasoning not tagged: %v", rb.Reasons)
	}
}

func TestMonitor_RollbackKeepsMagnitude(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)
	original := a.History().Recent("local")[0]

	after := append(prior, failures(3, quest.PatternFlashcards)...)
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 1 {
		t.Fatalf("got %d rollbacks, want 1", len(report.Rollbacks))
	}
	if report.Rollbacks[0].Magnitude != original.Magnitude {
		t.Errorf("rollback magnitude = %q, want %q", report.Rollbacks[0].Magnitude, original.Magnitude)
	}
}

func TestMonitor_LowRatingTriggersIncreaseRollback(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)

	// Completions succeed but the learner rates the fit poorly.
	after := prior
	for i := 0; i < 3; i++ {
		after = append(after, Completion{
			Pattern: quest.PatternFlashcards,
			Success: true,
			Rating:  2,
		})
	}
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 1 {
		t.Fatalf("got %d rollbacks, want 1", len(report.Rollbacks))
	}
}

func TestMonitor_RollsBackOutgrownDecrease(t *testing.T) {
	a := New(nil)
	prior := failures(7, quest.PatternFlashcards)
	_, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, prior, Context{})
	if results[0].Type != TypeDecrease {
		t.Fatalf("setup: type = %q, want decrease", results[0].Type)
	}

	// Everything after the decrease succeeds: the learner outgrew it.
	after := append(prior, successes(4, quest.PatternFlashcards)...)
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 1 {
		t.Fatalf("got %d rollbacks, want 1", len(report.Rollbacks))
	}
	if report.Rollbacks[0].Type != TypeIncrease {
		t.Errorf("rollback type = %q, want increase", report.Rollbacks[0].Type)
	}
}

func TestMonitor_HealthyAdjustmentNotRolledBack(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)

	// Mixed-but-decent outcomes: no trigger fires.
	after := append(prior,
		Completion{Pattern: quest.PatternFlashcards, Success: true, Rating: 4},
		Completion{Pattern: quest.PatternFlashcards, Success: false, Rating: 3},
		Completion{Pattern: quest.PatternFlashcards, Success: true, Rating: 4},
	)
	report := a.Monitor("local", after)
	if len(report.Rollbacks) != 0 {
		t.Fatalf("got %d rollbacks, want 0", len(report.Rollbacks))
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected a holding-steady recommendation")
	}
}

func TestMonitor_NeverRollsBackTwice(t *testing.T) {
	prior := successes(7, quest.PatternFlashcards)
	a := adjustOnce(t, prior)

	after := append(prior, failures(3, quest.PatternFlashcards)...)
	first := a.Monitor("local", after)
	if len(first.Rollbacks) != 1 {
		t.Fatalf("setup: got %d rollbacks, want 1", len(first.Rollbacks))
	}

	// More bad completions arrive, but the adjustment was already
	// reversed.
	again := append(after, failures(3, quest.PatternFlashcards)...)
	second := a.Monitor("local", again)
	if len(second.Rollbacks) != 0 {
		t.Fatalf("got %d rollbacks on second pass, want 0", len(second.Rollbacks))
	}
}

func TestMonitor_MaintainNeverRolledBack(t *testing.T) {
	a := New(nil)
	a.Adjust(context.Background(), "local", []quest.Quest{baseQuest()}, nil, Context{})

	report := a.Monitor("local", failures(5, quest.PatternFlashcards))
	if len(report.Rollbacks) != 0 {
		t.Fatalf("got %d rollbacks for a maintain, want 0", len(report.Rollbacks))
	}
}

func TestMonitor_EmptyHistory(t *testing.T) {
	a := New(nil)
	report := a.Monitor("local", successes(5, quest.PatternFlashcards))
	if len(report.Rollbacks) != 0 {
		t.Fatal("no adjustments means nothing to roll back")
	}
}
